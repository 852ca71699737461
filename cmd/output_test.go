package cmd

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/checkout"
	"github.com/inference-sim/checkout-sim/sim/trace"
)

func TestWriteSweepCSV_OneRowPerReplicate(t *testing.T) {
	// GIVEN a sweep over 3..4 lanes with 2 replicates
	points, err := checkout.Sweep(sim.DefaultSimConfig(), checkout.LaneRange(3, 4), 2)
	require.NoError(t, err)

	// WHEN written as CSV
	var buf bytes.Buffer
	require.NoError(t, writeSweepCSV(&buf, points))

	// THEN there is a header plus four rows, each with the full column set
	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, sweepHeader(), rows[0])
	assert.Equal(t, []string{"3", "42"}, rows[1][1:3])
	assert.Equal(t, []string{"3", "43"}, rows[2][1:3])
	assert.Equal(t, []string{"4", "42"}, rows[3][1:3])
	for _, r := range rows {
		assert.Len(t, r, 3+len(sim.CostRecordHeader()))
	}
	assert.Equal(t, points[0].Results[0].RunID.String(), rows[1][0])
}

func TestWriteRunReport_JSON(t *testing.T) {
	s, err := checkout.NewSimulator(sim.DefaultSimConfig(), trace.TraceLevelNone)
	require.NoError(t, err)
	res, err := s.Run()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeRunReport(&buf, runReport{Result: res, Queues: laneQueues(s.Lanes)}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Contains(t, decoded, "result")
	assert.NotContains(t, decoded, "lane_opening_advice")
	queues, ok := decoded["queues"].([]any)
	require.True(t, ok)
	assert.Len(t, queues, 5)

	total := 0
	for _, q := range laneQueues(s.Lanes) {
		total += len(q.Customers)
	}
	assert.Equal(t, 25, total)
}

func TestExportSweepCSV_FileAndStdout(t *testing.T) {
	// GIVEN a one-point sweep
	points, err := checkout.Sweep(sim.DefaultSimConfig(), []int{3}, 2)
	require.NoError(t, err)

	// WHEN exported to a file
	path := filepath.Join(t.TempDir(), "sweep.csv")
	var stdout bytes.Buffer
	require.NoError(t, exportSweepCSV(path, &stdout, points))

	// THEN the closed file holds the header and both rows, and stdout is untouched
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Zero(t, stdout.Len())

	// AND "-" writes the same document to stdout
	require.NoError(t, exportSweepCSV("-", &stdout, points))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(data), stdout.String())
}

func TestExportSweepCSV_ReportsFileErrors(t *testing.T) {
	points, err := checkout.Sweep(sim.DefaultSimConfig(), []int{3}, 1)
	require.NoError(t, err)

	err = exportSweepCSV(filepath.Join(t.TempDir(), "missing", "sweep.csv"), &bytes.Buffer{}, points)

	assert.Error(t, err)
}
