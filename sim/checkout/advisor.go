package checkout

import (
	"fmt"

	"github.com/inference-sim/checkout-sim/sim"
)

// LaneOpeningPolicy decides whether opening one more lane is worth it.
type LaneOpeningPolicy struct {
	// MinSLAPercent: consider opening only while SLA attainment is below this.
	MinSLAPercent float64
	// MaxMarginalCostUSD: open only if the extra lane adds at most this much lane cost.
	MaxMarginalCostUSD float64
}

// DefaultLaneOpeningPolicy opens a lane when SLA is under 85% and the
// marginal lane cost is at most $50.
func DefaultLaneOpeningPolicy() LaneOpeningPolicy {
	return LaneOpeningPolicy{MinSLAPercent: 85, MaxMarginalCostUSD: 50}
}

// LaneOpeningAdvice is the outcome of a lane-opening check.
type LaneOpeningAdvice struct {
	Open            bool            `json:"open"`
	Current         sim.CostRecord  `json:"current"`
	WithExtraLane   *sim.CostRecord `json:"with_extra_lane,omitempty"` // nil when no extra lane is possible
	MarginalCostUSD float64         `json:"marginal_lane_cost_usd"`
	Reason          string          `json:"reason"`
}

// Decide compares a run against the same run with one extra lane.
// withExtra may be nil when the lane count is already at its maximum.
func (p LaneOpeningPolicy) Decide(current sim.CostRecord, withExtra *sim.CostRecord) LaneOpeningAdvice {
	a := LaneOpeningAdvice{Current: current, WithExtraLane: withExtra}
	if withExtra != nil {
		a.MarginalCostUSD = withExtra.LaneCostUSD - current.LaneCostUSD
	}
	switch {
	case current.SLAAttainmentPercent >= p.MinSLAPercent:
		a.Reason = fmt.Sprintf("SLA %.1f%% meets %.1f%%", current.SLAAttainmentPercent, p.MinSLAPercent)
	case withExtra == nil:
		a.Reason = "no room for another lane"
	case a.MarginalCostUSD > p.MaxMarginalCostUSD:
		a.Reason = fmt.Sprintf("marginal lane cost $%.2f exceeds $%.2f", a.MarginalCostUSD, p.MaxMarginalCostUSD)
	default:
		a.Open = true
		a.Reason = fmt.Sprintf("SLA %.1f%% below %.1f%% and marginal lane cost $%.2f within $%.2f",
			current.SLAAttainmentPercent, p.MinSLAPercent, a.MarginalCostUSD, p.MaxMarginalCostUSD)
	}
	return a
}

// AdviseLaneOpening runs cfg and, when the lane count allows, the same seed
// with one more lane, then applies p.
func AdviseLaneOpening(cfg sim.SimConfig, p LaneOpeningPolicy) (LaneOpeningAdvice, error) {
	current, err := RunOnce(cfg)
	if err != nil {
		return LaneOpeningAdvice{}, err
	}
	if cfg.Lanes.Count >= sim.MaxLanes {
		return p.Decide(current.Cost, nil), nil
	}
	ec := cfg
	ec.Lanes.Count++
	extra, err := RunOnce(ec)
	if err != nil {
		return LaneOpeningAdvice{}, fmt.Errorf("run with %d lanes: %w", ec.Lanes.Count, err)
	}
	return p.Decide(current.Cost, &extra.Cost), nil
}
