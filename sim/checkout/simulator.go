package checkout

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/checkout-sim/sim"
	"github.com/inference-sim/checkout-sim/sim/trace"
	"github.com/inference-sim/checkout-sim/sim/workload"
)

// ErrDraining is returned when lane contents are changed after draining began.
var ErrDraining = errors.New("lanes are draining")

// Simulator runs one checkout pass: generate, lay out lanes, assign,
// compute service times and price the result.
//
// Not safe for concurrent use. After Run returns, Lanes and Customers are
// consistent and may be read directly; Step then drains lanes for display
// without touching the metrics.
type Simulator struct {
	Config sim.SimConfig
	RNG    *sim.PartitionedRNG

	Cashiers   []*sim.Cashier
	Customers  []*sim.Customer // authoritative list for metrics, in generation order
	Lanes      []*sim.Lane
	Unassigned []*sim.Customer
	Trace      *trace.SimulationTrace // nil when tracing is off

	ran   bool
	steps int
}

// NewSimulator validates cfg and prepares a simulator. traceLevel "" or
// "none" disables tracing.
func NewSimulator(cfg sim.SimConfig, traceLevel trace.TraceLevel) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sim config: %w", err)
	}
	if !trace.IsValidTraceLevel(string(traceLevel)) {
		return nil, fmt.Errorf("unknown trace level %q", traceLevel)
	}
	s := &Simulator{
		Config: cfg,
		RNG:    sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)),
	}
	if traceLevel != "" && traceLevel != trace.TraceLevelNone {
		s.Trace = trace.NewSimulationTrace(trace.TraceConfig{Level: traceLevel})
	}
	return s, nil
}

// Run executes the full pass once.
func (s *Simulator) Run() (*EvaluationResult, error) {
	if s.ran {
		return nil, errors.New("simulator already ran; create a new one per pass")
	}
	s.ran = true
	start := time.Now()

	cfg := s.Config
	logrus.Infof("Starting checkout simulation: seed=%d lanes=%d express=%s policy=%q customers=%d",
		cfg.Seed, cfg.Lanes.Count, cfg.Lanes.ExpressPosition, cfg.Lanes.AssignmentPolicy, cfg.Generator.Customers)

	s.Cashiers, s.Customers = workload.Generate(cfg.Generator, cfg.Lanes.Count, s.RNG)

	lanes, err := BuildLanes(s.Cashiers, ExpressPosition(cfg.Lanes.ExpressPosition), s.RNG.ForSubsystem(sim.SubsystemLayout))
	if err != nil {
		return nil, err
	}
	s.Lanes = lanes

	policy := sim.NewAssignmentPolicy(cfg.Lanes.AssignmentPolicy, s.RNG.ForSubsystem(sim.SubsystemAssignment))
	res := sim.AssignAll(policy, s.Lanes, s.Customers, s.Trace)
	s.Unassigned = res.Unassigned
	if len(s.Unassigned) > 0 {
		logrus.Warnf("%d of %d customers could not be assigned to any lane", len(s.Unassigned), len(s.Customers))
	}

	sim.ComputeAllServiceTimes(s.Lanes)

	result, err := s.evaluate(time.Since(start))
	if err != nil {
		return nil, err
	}
	logrus.Infof("Simulation complete: total cost $%.2f, SLA %.1f%%", result.Cost.TotalCostUSD, result.Cost.SLAAttainmentPercent)
	return result, nil
}

// Evaluate re-prices the current lane state, e.g. after MoveCustomer.
// Lane statistics need full queues, so it is refused once draining began.
func (s *Simulator) Evaluate() (*EvaluationResult, error) {
	if !s.ran {
		return nil, errors.New("simulator has not run")
	}
	if s.steps > 0 {
		return nil, fmt.Errorf("evaluate: %w", ErrDraining)
	}
	return s.evaluate(0)
}

func (s *Simulator) evaluate(wall time.Duration) (*EvaluationResult, error) {
	cost, err := sim.Evaluate(s.Lanes, s.assigned(), s.Config.Cost)
	if err != nil {
		return nil, fmt.Errorf("evaluating seed %d: %w", s.Config.Seed, err)
	}
	var summary *trace.TraceSummary
	if s.Trace != nil {
		summary = trace.Summarize(s.Trace)
	}
	return NewEvaluationResult(s.Config, cost, CollectLaneStats(s.Lanes), len(s.Unassigned), summary, wall), nil
}

// assigned returns Customers minus Unassigned, preserving generation order.
// Unassigned customers never received a TotalTime and would otherwise count
// as meeting the SLA.
func (s *Simulator) assigned() []*sim.Customer {
	if len(s.Unassigned) == 0 {
		return s.Customers
	}
	skip := make(map[int]bool, len(s.Unassigned))
	for _, c := range s.Unassigned {
		skip[c.ID] = true
	}
	out := make([]*sim.Customer, 0, len(s.Customers)-len(s.Unassigned))
	for _, c := range s.Customers {
		if !skip[c.ID] {
			out = append(out, c)
		}
	}
	return out
}

// Lane returns the lane with the given ID, or nil.
func (s *Simulator) Lane(id int) *sim.Lane {
	for _, l := range s.Lanes {
		if l.ID == id {
			return l
		}
	}
	return nil
}

// MoveCustomer moves a queued customer, by ID, to the back of another lane and
// recomputes service times for both lanes. Refused once draining has started.
func (s *Simulator) MoveCustomer(customerID, toLaneID int) error {
	if s.steps > 0 {
		return fmt.Errorf("move customer %d: %w", customerID, ErrDraining)
	}
	to := s.Lane(toLaneID)
	if to == nil {
		return fmt.Errorf("move customer %d: no lane %d", customerID, toLaneID)
	}
	var from *sim.Lane
	var c *sim.Customer
	for _, l := range s.Lanes {
		for _, q := range l.Queue() {
			if q.ID == customerID {
				from, c = l, q
				break
			}
		}
		if from != nil {
			break
		}
	}
	if from == nil {
		return fmt.Errorf("move customer %d: not queued in any lane", customerID)
	}
	if from == to {
		return nil
	}
	if !to.Accepts(c) {
		return fmt.Errorf("move customer %d: lane %d is express and customer has %d items", customerID, toLaneID, c.ItemCount)
	}
	from.Remove(customerID)
	to.Add(c)
	sim.ComputeServiceTimes(from)
	sim.ComputeServiceTimes(to)
	logrus.Debugf("moved customer %d from lane %d to lane %d", customerID, from.ID, to.ID)
	return nil
}

// Step serves the head customer of every non-empty lane. Returns false once
// all lanes are empty. Draining only changes the queues; Customers,
// TotalTime and TotalServiceTime keep the values computed by Run.
func (s *Simulator) Step() bool {
	if s.Done() {
		return false
	}
	s.steps++
	for _, l := range s.Lanes {
		c := l.ServeNext()
		if c == nil {
			continue
		}
		if s.Trace != nil {
			s.Trace.RecordDrain(trace.DrainRecord{Step: s.steps, LaneID: l.ID, CustomerID: c.ID})
		}
	}
	return true
}

// Done reports whether every lane has been drained.
func (s *Simulator) Done() bool {
	for _, l := range s.Lanes {
		if l.Len() > 0 {
			return false
		}
	}
	return true
}

// Steps returns the number of drain steps taken so far.
func (s *Simulator) Steps() int {
	return s.steps
}
