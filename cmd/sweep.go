package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inference-sim/checkout-sim/sim/checkout"
)

var (
	minLanes   int    // Smallest lane count in the sweep
	maxLanes   int    // Largest lane count in the sweep
	replicates int    // Seeds per lane count
	outputPath string // CSV destination, "-" for stdout
)

// sweepCmd runs replicates across a range of lane counts and exports CSV
var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run replicates across lane counts and export cost records as CSV",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveSimConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		counts := checkout.LaneRange(minLanes, maxLanes)
		if len(counts) == 0 {
			logrus.Fatalf("--min-lanes (%d) must not exceed --max-lanes (%d)", minLanes, maxLanes)
		}

		points, err := checkout.Sweep(cfg, counts, replicates)
		if err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}

		if err := exportSweepCSV(outputPath, os.Stdout, points); err != nil {
			logrus.Fatalf("Writing sweep CSV: %v", err)
		}
		if outputPath != "-" {
			logrus.Infof("Wrote %d lane counts x %d replicates to %s", len(points), replicates, outputPath)
		}
	},
}

// exportSweepCSV writes points to path, or to stdout when path is "-".
// A file is closed before returning so a failed flush is reported.
func exportSweepCSV(path string, stdout io.Writer, points []checkout.SweepPoint) error {
	if path == "-" {
		return writeSweepCSV(stdout, points)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeSweepCSV(f, points); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
