// Prices a finished simulation pass: lane cost, wait cost and SLA penalty.

package sim

import (
	"errors"
	"math"
	"strconv"
)

// Degenerate inputs for which no cost is defined.
var (
	ErrNoLanes     = errors.New("cost evaluation: no lanes")
	ErrNoCustomers = errors.New("cost evaluation: no customers")
)

// CostParams holds the business parameters used to price a run.
type CostParams struct {
	LaneCostPerMinute   float64 `yaml:"lane_cost_per_minute" json:"lane_cost_per_minute"`     // USD per open lane per minute
	WaitCostPerMinute   float64 `yaml:"wait_cost_per_minute" json:"wait_cost_per_minute"`     // USD per customer-minute in the system
	SLAPenaltyPerPoint  float64 `yaml:"sla_penalty_per_point" json:"sla_penalty_per_point"`   // USD per percentage point below target
	SLATimeLimitSeconds float64 `yaml:"sla_time_limit_seconds" json:"sla_time_limit_seconds"` // A customer meets the SLA at or below this total time
	SLATargetPercent    float64 `yaml:"sla_target_percent" json:"sla_target_percent"`         // Share of customers that should meet the SLA
}

// DefaultCostParams returns the reference pricing: $2/lane-minute, $0.5 per
// customer-minute, $10 per missed SLA point, 8-minute limit, 80% target.
func DefaultCostParams() CostParams {
	return CostParams{
		LaneCostPerMinute:   2.0,
		WaitCostPerMinute:   0.5,
		SLAPenaltyPerPoint:  10.0,
		SLATimeLimitSeconds: 480,
		SLATargetPercent:    80,
	}
}

// CostRecord summarizes one simulation pass. Not mutated once produced.
type CostRecord struct {
	ActiveLanes          int     `json:"active_lanes"`
	TotalCustomers       int     `json:"total_customers"`
	OperationTimeMinutes float64 `json:"operation_time_minutes"`
	SystemTimeSumMinutes float64 `json:"system_time_sum_minutes"`
	SLAAttainmentPercent float64 `json:"sla_attainment_percent"`
	LaneCostUSD          float64 `json:"lane_cost_usd"`
	WaitCostUSD          float64 `json:"wait_cost_usd"`
	SLAPenaltyUSD        float64 `json:"sla_penalty_usd"`
	TotalCostUSD         float64 `json:"total_cost_usd"`
}

// CostRecordHeader lists the tabular column names matching CostRecord.Row.
func CostRecordHeader() []string {
	return []string{
		"active_lanes", "total_customers", "operation_time_minutes", "system_time_sum_minutes",
		"sla_attainment_percent", "lane_cost_usd", "wait_cost_usd", "sla_penalty_usd", "total_cost_usd",
	}
}

// Row renders the record as strings in CostRecordHeader order.
func (r CostRecord) Row() []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }
	return []string{
		strconv.Itoa(r.ActiveLanes),
		strconv.Itoa(r.TotalCustomers),
		f(r.OperationTimeMinutes),
		f(r.SystemTimeSumMinutes),
		f(r.SLAAttainmentPercent),
		f(r.LaneCostUSD),
		f(r.WaitCostUSD),
		f(r.SLAPenaltyUSD),
		f(r.TotalCostUSD),
	}
}

// Evaluate prices a completed pass. ComputeServiceTimes must already have run
// on every lane. customers is the authoritative list for system time and SLA,
// independent of how far the lanes have been drained.
func Evaluate(lanes []*Lane, customers []*Customer, p CostParams) (CostRecord, error) {
	if len(lanes) == 0 {
		return CostRecord{}, ErrNoLanes
	}
	if len(customers) == 0 {
		return CostRecord{}, ErrNoCustomers
	}

	// The run lasts as long as the slowest lane.
	opSeconds := 0.0
	for _, l := range lanes {
		opSeconds = math.Max(opSeconds, l.TotalServiceTime)
	}

	sysSeconds := 0.0
	for _, c := range customers {
		sysSeconds += c.TotalTime
	}

	sla := SLAAttainment(customers, p.SLATimeLimitSeconds)
	return p.Price(len(lanes), len(customers), opSeconds/60, sysSeconds/60, sla), nil
}

// Price turns run metrics into a CostRecord.
func (p CostParams) Price(activeLanes, totalCustomers int, operationMinutes, systemTimeSumMinutes, slaPercent float64) CostRecord {
	r := CostRecord{
		ActiveLanes:          activeLanes,
		TotalCustomers:       totalCustomers,
		OperationTimeMinutes: operationMinutes,
		SystemTimeSumMinutes: systemTimeSumMinutes,
		SLAAttainmentPercent: slaPercent,
	}
	r.LaneCostUSD = p.LaneCostPerMinute * float64(activeLanes) * operationMinutes
	r.WaitCostUSD = p.WaitCostPerMinute * systemTimeSumMinutes
	// Only the shortfall is penalized; beating the target earns nothing.
	r.SLAPenaltyUSD = p.SLAPenaltyPerPoint * math.Max(0, p.SLATargetPercent-slaPercent)
	r.TotalCostUSD = r.LaneCostUSD + r.WaitCostUSD + r.SLAPenaltyUSD
	return r
}

// SLAAttainment returns the percentage of customers whose TotalTime is at or
// below limitSeconds. Returns 0 for an empty slice.
func SLAAttainment(customers []*Customer, limitSeconds float64) float64 {
	if len(customers) == 0 {
		return 0
	}
	met := 0
	for _, c := range customers {
		if c.TotalTime <= limitSeconds {
			met++
		}
	}
	return 100 * float64(met) / float64(len(customers))
}
