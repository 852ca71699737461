package checkout

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/trace"
)

// runNamespace scopes run IDs so they never collide with other SHA-1 UUIDs.
var runNamespace = uuid.MustParse("6f1c2a4e-9b3d-4e8a-a7f5-2c0d81b4e937")

// RunIDFor derives a stable identifier from everything that determines a
// run's outcome. The same seed and configuration always map to the same ID,
// so exported rows from repeated experiments can be joined.
func RunIDFor(cfg sim.SimConfig) uuid.UUID {
	g, l, p := cfg.Generator, cfg.Lanes, cfg.Cost
	key := fmt.Sprintf("seed=%d|customers=%d|bias=%t|ratio=%g|mult=%g|lanes=%d|express=%s|policy=%s|cost=%g,%g,%g,%g,%g",
		cfg.Seed, g.Customers, g.ExpressBias, g.ExpressRatio, g.ServiceMultiplier,
		l.Count, l.ExpressPosition, l.AssignmentPolicy,
		p.LaneCostPerMinute, p.WaitCostPerMinute, p.SLAPenaltyPerPoint, p.SLATimeLimitSeconds, p.SLATargetPercent)
	return uuid.NewSHA1(runNamespace, []byte(key))
}

// EvaluationResult bundles all outputs from one simulation pass.
// Used by the CLI, replicate runs and sweeps for unified access to the
// cost record, lane statistics and decision trace summary.
type EvaluationResult struct {
	RunID      uuid.UUID           `json:"run_id"`
	Seed       int64               `json:"seed"`
	Cost       sim.CostRecord      `json:"cost"`
	Lanes      []LaneStats         `json:"lanes"`
	Summary    LaneSummary         `json:"summary"`
	Unassigned int                 `json:"unassigned"`
	Trace      *trace.TraceSummary `json:"trace,omitempty"` // nil if tracing is off

	WallTime time.Duration `json:"-"`
}

// NewEvaluationResult constructs an EvaluationResult.
// lanes is required; summary may be nil.
func NewEvaluationResult(cfg sim.SimConfig, cost sim.CostRecord, lanes []LaneStats, unassigned int, summary *trace.TraceSummary, wallTime time.Duration) *EvaluationResult {
	return &EvaluationResult{
		RunID:      RunIDFor(cfg),
		Seed:       cfg.Seed,
		Cost:       cost,
		Lanes:      lanes,
		Summary:    SummarizeLanes(lanes),
		Unassigned: unassigned,
		Trace:      summary,
		WallTime:   wallTime,
	}
}
