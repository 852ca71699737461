// Package testutil provides shared test infrastructure for the checkout
// simulator: the hand-computed golden dataset and float assertions.
package testutil

import (
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Cases []GoldenCase `json:"cases"`
}

// GoldenCase is one fixed lane layout with its expected evaluation.
// Costs use the default pricing.
type GoldenCase struct {
	Name              string        `json:"name"`
	ServiceMultiplier float64       `json:"service_multiplier"`
	Lanes             []GoldenLane  `json:"lanes"`
	Metrics           GoldenMetrics `json:"metrics"`
}

// GoldenLane lists one lane's cashier and the basket sizes queued in order.
type GoldenLane struct {
	Express      bool    `json:"express"`
	Experienced  bool    `json:"experienced"`
	CheckoutTime float64 `json:"checkout_time"`
	Items        []int   `json:"items"`
}

// GoldenMetrics represents the expected outcome of a golden case.
type GoldenMetrics struct {
	LaneTotalsS    []float64 `json:"lane_totals_s"`
	TotalCustomers int       `json:"total_customers"`

	OperationTimeMinutes float64 `json:"operation_time_minutes"`
	SystemTimeSumMinutes float64 `json:"system_time_sum_minutes"`
	SLAAttainmentPercent float64 `json:"sla_attainment_percent"`

	LaneCostUSD   float64 `json:"lane_cost_usd"`
	WaitCostUSD   float64 `json:"wait_cost_usd"`
	SLAPenaltyUSD float64 `json:"sla_penalty_usd"`
	TotalCostUSD  float64 `json:"total_cost_usd"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Cases) == 0 {
		t.Fatal("golden dataset has no cases")
	}
	return &dataset
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
