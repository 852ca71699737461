package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inference-sim/checkout-sim/sim"
)

func TestRunIDFor_StableAndConfigSensitive(t *testing.T) {
	base := sim.DefaultSimConfig()
	id := RunIDFor(base)

	assert.Equal(t, id, RunIDFor(sim.DefaultSimConfig()))
	assert.Equal(t, 5, int(id.Version()))

	seed := base
	seed.Seed++
	assert.NotEqual(t, id, RunIDFor(seed))

	policy := base
	policy.Lanes.AssignmentPolicy = "unrestricted-random"
	assert.NotEqual(t, id, RunIDFor(policy))

	cost := base
	cost.Cost.SLATargetPercent = 90
	assert.NotEqual(t, id, RunIDFor(cost))
}

func TestNewEvaluationResult_SummarizesLanes(t *testing.T) {
	stats := []LaneStats{{LaneID: 1, TotalServiceTime: 30}, {LaneID: 2, Express: true, TotalServiceTime: 10}}

	res := NewEvaluationResult(sim.DefaultSimConfig(), sim.CostRecord{ActiveLanes: 2}, stats, 1, nil, 0)

	assert.Equal(t, int64(42), res.Seed)
	assert.Equal(t, 2, res.Summary.FastestLane)
	assert.Equal(t, 2, res.Summary.ExpressLane)
	assert.Equal(t, 1, res.Unassigned)
	assert.Nil(t, res.Trace)
}
