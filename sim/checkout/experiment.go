package checkout

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/trace"
)

// RunOnce builds a Simulator for cfg and runs it.
func RunOnce(cfg sim.SimConfig) (*EvaluationResult, error) {
	s, err := NewSimulator(cfg, trace.TraceLevelNone)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// RunReplicates runs cfg replicates times with seeds cfg.Seed, cfg.Seed+1, ...
// Results are returned in seed order.
func RunReplicates(cfg sim.SimConfig, replicates int) ([]*EvaluationResult, error) {
	if replicates < 1 {
		return nil, fmt.Errorf("replicates must be at least 1, got %d", replicates)
	}
	results := make([]*EvaluationResult, 0, replicates)
	for i := 0; i < replicates; i++ {
		rc := cfg
		rc.Seed = cfg.Seed + int64(i)
		res, err := RunOnce(rc)
		if err != nil {
			return nil, fmt.Errorf("replicate %d (seed %d): %w", i, rc.Seed, err)
		}
		results = append(results, res)
	}
	return results, nil
}

// SweepPoint aggregates the replicates of one lane count.
type SweepPoint struct {
	Lanes         int                 `json:"lanes"`
	Results       []*EvaluationResult `json:"results"`
	TotalCost     Distribution        `json:"total_cost_usd"`
	SLAAttainment Distribution        `json:"sla_attainment_percent"`
	OperationTime Distribution        `json:"operation_time_minutes"`
}

// NewSweepPoint summarizes replicate results for one lane count.
func NewSweepPoint(lanes int, results []*EvaluationResult) SweepPoint {
	cost := make([]float64, len(results))
	sla := make([]float64, len(results))
	op := make([]float64, len(results))
	for i, r := range results {
		cost[i] = r.Cost.TotalCostUSD
		sla[i] = r.Cost.SLAAttainmentPercent
		op[i] = r.Cost.OperationTimeMinutes
	}
	return SweepPoint{
		Lanes:         lanes,
		Results:       results,
		TotalCost:     NewDistribution(cost),
		SLAAttainment: NewDistribution(sla),
		OperationTime: NewDistribution(op),
	}
}

// Sweep runs replicates for every lane count in laneCounts, keeping the rest
// of cfg fixed. Each lane count reuses the same seeds, so differences between
// points come from the lane count, not from different customers.
func Sweep(cfg sim.SimConfig, laneCounts []int, replicates int) ([]SweepPoint, error) {
	if len(laneCounts) == 0 {
		return nil, fmt.Errorf("sweep: no lane counts given")
	}
	points := make([]SweepPoint, 0, len(laneCounts))
	for _, n := range laneCounts {
		pc := cfg
		pc.Lanes.Count = n
		results, err := RunReplicates(pc, replicates)
		if err != nil {
			return nil, fmt.Errorf("sweep lanes=%d: %w", n, err)
		}
		p := NewSweepPoint(n, results)
		logrus.Infof("sweep lanes=%d: mean cost $%.2f, mean SLA %.1f%%", n, p.TotalCost.Mean, p.SLAAttainment.Mean)
		points = append(points, p)
	}
	return points, nil
}

// LaneRange returns the lane counts lo..hi inclusive, or nil if lo > hi.
func LaneRange(lo, hi int) []int {
	if lo > hi {
		return nil
	}
	out := make([]int, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, n)
	}
	return out
}
