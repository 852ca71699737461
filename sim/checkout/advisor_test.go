package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inference-sim/checkout-sim/sim"
)

func TestLaneOpeningPolicy_Decide(t *testing.T) {
	p := DefaultLaneOpeningPolicy()
	tests := []struct {
		name      string
		current   sim.CostRecord
		withExtra *sim.CostRecord
		wantOpen  bool
	}{
		{"sla met", sim.CostRecord{SLAAttainmentPercent: 90, LaneCostUSD: 100}, &sim.CostRecord{LaneCostUSD: 110}, false},
		{"at max lanes", sim.CostRecord{SLAAttainmentPercent: 50, LaneCostUSD: 100}, nil, false},
		{"too expensive", sim.CostRecord{SLAAttainmentPercent: 50, LaneCostUSD: 100}, &sim.CostRecord{LaneCostUSD: 151}, false},
		{"open", sim.CostRecord{SLAAttainmentPercent: 50, LaneCostUSD: 100}, &sim.CostRecord{LaneCostUSD: 150}, true},
		{"extra lane is cheaper", sim.CostRecord{SLAAttainmentPercent: 84.9, LaneCostUSD: 100}, &sim.CostRecord{LaneCostUSD: 90}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := p.Decide(tc.current, tc.withExtra)
			assert.Equal(t, tc.wantOpen, a.Open)
			assert.NotEmpty(t, a.Reason)
			if tc.withExtra != nil {
				assert.InDelta(t, tc.withExtra.LaneCostUSD-tc.current.LaneCostUSD, a.MarginalCostUSD, 1e-9)
			}
		})
	}
}

func TestAdviseLaneOpening_ComparesOneExtraLane(t *testing.T) {
	cfg := sim.DefaultSimConfig()

	a, err := AdviseLaneOpening(cfg, DefaultLaneOpeningPolicy())

	require.NoError(t, err)
	require.NotNil(t, a.WithExtraLane)
	assert.Equal(t, cfg.Lanes.Count, a.Current.ActiveLanes)
	assert.Equal(t, cfg.Lanes.Count+1, a.WithExtraLane.ActiveLanes)
	assert.Equal(t, cfg.Generator.Customers, a.WithExtraLane.TotalCustomers)
}

func TestAdviseLaneOpening_AtMaxLanes(t *testing.T) {
	cfg := sim.DefaultSimConfig()
	cfg.Lanes.Count = sim.MaxLanes
	cfg.Cost.SLATargetPercent = 100
	cfg.Cost.SLATimeLimitSeconds = 0

	a, err := AdviseLaneOpening(cfg, LaneOpeningPolicy{MinSLAPercent: 100, MaxMarginalCostUSD: 1e9})

	require.NoError(t, err)
	assert.Nil(t, a.WithExtraLane)
	assert.False(t, a.Open)
}
