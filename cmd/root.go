package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/checkout"
	"github.com/inference-sim/checkout-sim/sim/trace"
)

var (
	// Shared simulation flags
	configPath        string  // YAML config file; flags override its values
	seed              int64   // Master seed for generation, layout and assignment
	logLevel          string  // Log verbosity level
	customers         int     // Number of customers generated
	laneCount         int     // Number of open lanes
	expressPosition   string  // Express lane placement
	assignmentPolicy  string  // Lane assignment policy name
	serviceMultiplier float64 // Scales every cashier's scan and checkout time
	expressBias       bool    // Split baskets into small/large
	expressRatio      float64 // Probability of a small basket under express bias

	// run-only flags
	traceLevel string // Decision trace verbosity
	showQueues bool   // Include per-lane queues in the output
	advise     bool   // Compare against one extra lane
	drain      bool   // Step lanes to empty and log each step
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "checkout-sim",
	Short: "Checkout-lane queueing simulator for retail stores",
}

// runCmd executes one simulation pass using the config file and CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one checkout simulation and print the evaluation as JSON",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		cfg, err := resolveSimConfig(cmd)
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		if !trace.IsValidTraceLevel(traceLevel) {
			logrus.Fatalf("Unknown trace level %q. Valid: none, decisions, full", traceLevel)
		}

		s, err := checkout.NewSimulator(cfg, trace.TraceLevel(traceLevel))
		if err != nil {
			logrus.Fatalf("%v", err)
		}
		res, err := s.Run()
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		logrus.Infof("Run %s finished in %v", res.RunID, res.WallTime)

		report := runReport{Result: res}
		if showQueues {
			report.Queues = laneQueues(s.Lanes)
		}
		if advise {
			a, err := checkout.AdviseLaneOpening(cfg, checkout.DefaultLaneOpeningPolicy())
			if err != nil {
				logrus.Fatalf("Lane opening advice failed: %v", err)
			}
			report.Advice = &a
		}
		if err := writeRunReport(os.Stdout, report); err != nil {
			logrus.Fatalf("Writing report: %v", err)
		}

		if drain {
			drainLanes(s)
		}
	},
}

func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// drainLanes steps every lane to empty, logging who left at each step.
func drainLanes(s *checkout.Simulator) {
	for !s.Done() {
		served := make([]string, 0, len(s.Lanes))
		for _, l := range s.Lanes {
			if c := l.Queue(); len(c) > 0 {
				served = append(served, fmt.Sprintf("lane %d: customer %d", l.ID, c[0].ID))
			}
		}
		s.Step()
		logrus.Infof("step %d served %v", s.Steps(), served)
	}
	logrus.Infof("All lanes drained after %d steps", s.Steps())
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addSimFlags registers the flags shared by run and sweep.
func addSimFlags(fs *pflag.FlagSet) {
	d := sim.DefaultSimConfig()
	fs.StringVar(&configPath, "config", "", "Path to a YAML sim config (see defaults.yaml); flags override it")
	fs.Int64Var(&seed, "seed", d.Seed, "Seed for customer generation, lane layout and assignment")
	fs.StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Workload
	fs.IntVar(&customers, "customers", d.Generator.Customers, "Number of customers")
	fs.BoolVar(&expressBias, "express-bias", d.Generator.ExpressBias, "Split baskets into small (1-10) and large (11-50)")
	fs.Float64Var(&expressRatio, "express-ratio", d.Generator.ExpressRatio, "Probability of a small basket when express bias is on")
	fs.Float64Var(&serviceMultiplier, "service-multiplier", d.Generator.ServiceMultiplier, "Scales every cashier's scan and checkout time")

	// Lanes
	fs.IntVar(&laneCount, "lanes", d.Lanes.Count, fmt.Sprintf("Number of open lanes (%d-%d)", sim.MinLanes, sim.MaxLanes))
	fs.StringVar(&expressPosition, "express-position", d.Lanes.ExpressPosition, "Express lane placement (first, middle, last, random)")
	fs.StringVar(&assignmentPolicy, "policy", d.Lanes.AssignmentPolicy, "Lane assignment policy (eligibility-filtered, unrestricted-random)")
}

// init sets up CLI flags and subcommands
func init() {
	addSimFlags(runCmd.Flags())
	runCmd.Flags().StringVar(&traceLevel, "trace-level", "none", "Decision trace level (none, decisions, full)")
	runCmd.Flags().BoolVar(&showQueues, "show-queues", false, "Include every lane's queue in the output")
	runCmd.Flags().BoolVar(&advise, "advise", false, "Also run with one extra lane and advise whether to open it")
	runCmd.Flags().BoolVar(&drain, "drain", false, "Step lanes to empty after the run, logging each step at info level")

	addSimFlags(sweepCmd.Flags())
	sweepCmd.Flags().IntVar(&minLanes, "min-lanes", sim.MinLanes, "Smallest lane count to sweep")
	sweepCmd.Flags().IntVar(&maxLanes, "max-lanes", sim.MaxLanes, "Largest lane count to sweep")
	sweepCmd.Flags().IntVar(&replicates, "replicates", 10, "Seeds per lane count (seed, seed+1, ...)")
	sweepCmd.Flags().StringVar(&outputPath, "output", "-", "CSV output path, - for stdout")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(sweepCmd)
}
