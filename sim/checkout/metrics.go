package checkout

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/inference-sim/checkout-sim/sim"
)

// Distribution captures statistical summary of a metric across replicates.
type Distribution struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Count  int     `json:"count"`
}

// NewDistribution computes a Distribution from raw values.
// Returns zero-value Distribution for empty input.
func NewDistribution(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mean, std := stat.MeanStdDev(sorted, nil)
	if len(sorted) == 1 {
		std = 0 // sample std dev is undefined (NaN) for a single value
	}
	return Distribution{
		Mean:   mean,
		StdDev: std,
		P50:    stat.Quantile(0.50, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		Count:  len(sorted),
	}
}

// LaneStats describes one lane after a simulation pass.
type LaneStats struct {
	LaneID             int     `json:"lane_id"`
	Express            bool    `json:"express"`
	CashierExperienced bool    `json:"cashier_experienced"`
	Customers          int     `json:"customers"`
	TotalServiceTime   float64 `json:"total_service_time_s"`
	MeanTimeInSystem   float64 `json:"mean_time_in_system_s"`
	// Utilization is the share of the run's operation time this lane was busy.
	Utilization float64 `json:"utilization"`
}

// CollectLaneStats snapshots every lane. Call after ComputeServiceTimes and
// before draining.
func CollectLaneStats(lanes []*sim.Lane) []LaneStats {
	makespan := 0.0
	for _, l := range lanes {
		makespan = math.Max(makespan, l.TotalServiceTime)
	}
	stats := make([]LaneStats, 0, len(lanes))
	for _, l := range lanes {
		s := LaneStats{
			LaneID:             l.ID,
			Express:            l.Express,
			CashierExperienced: l.Cashier().HasExperience(),
			Customers:          l.Len(),
			TotalServiceTime:   l.TotalServiceTime,
		}
		if s.Customers > 0 {
			sum := 0.0
			for _, c := range l.Queue() {
				sum += c.TotalTime
			}
			s.MeanTimeInSystem = sum / float64(s.Customers)
		}
		if makespan > 0 {
			s.Utilization = l.TotalServiceTime / makespan
		}
		stats = append(stats, s)
	}
	return stats
}

// LaneSummary is the end-of-run comparison shown to operators: which lane
// finished first and last, and how the express lane fared against the rest.
type LaneSummary struct {
	FastestLane int     `json:"fastest_lane"`
	FastestTime float64 `json:"fastest_time_s"`
	SlowestLane int     `json:"slowest_lane"`
	SlowestTime float64 `json:"slowest_time_s"`
	ExpressLane int     `json:"express_lane"` // 0 when there is no express lane
	// ExpressDelta is the express lane's total minus the normal-lane average;
	// negative means the express lane finished sooner.
	ExpressDelta float64 `json:"express_delta_s"`
}

// SummarizeLanes builds a LaneSummary. Ties go to the lowest lane ID.
func SummarizeLanes(stats []LaneStats) LaneSummary {
	var s LaneSummary
	if len(stats) == 0 {
		return s
	}
	ordered := make([]LaneStats, len(stats))
	copy(ordered, stats)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].TotalServiceTime != ordered[j].TotalServiceTime {
			return ordered[i].TotalServiceTime < ordered[j].TotalServiceTime
		}
		return ordered[i].LaneID < ordered[j].LaneID
	})
	s.FastestLane, s.FastestTime = ordered[0].LaneID, ordered[0].TotalServiceTime
	last := ordered[len(ordered)-1]
	s.SlowestLane, s.SlowestTime = last.LaneID, last.TotalServiceTime

	normalSum, normalCount := 0.0, 0
	var express *LaneStats
	for i := range stats {
		if stats[i].Express {
			if express == nil {
				express = &stats[i]
			}
			continue
		}
		normalSum += stats[i].TotalServiceTime
		normalCount++
	}
	if express != nil && normalCount > 0 {
		s.ExpressLane = express.LaneID
		s.ExpressDelta = express.TotalServiceTime - normalSum/float64(normalCount)
	}
	return s
}
