package sim

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/sirupsen/logrus"

	"github.com/inference-sim/checkout-sim/sim/trace"
)

// AssignmentDecision describes where a customer ended up.
type AssignmentDecision struct {
	LaneID        int    // Lane that accepted the customer; 0 when Assigned is false
	Assigned      bool   // False means no candidate lane accepted the customer
	Attempts      int    // Number of Lane.Add calls made
	RejectedLanes []int  // Lanes that refused the customer, in attempt order
	Reason        string // Human-readable explanation
}

// AssignmentPolicy places one customer into one of the lanes.
// Implementations call Lane.Add themselves, so a returned decision with
// Assigned=true means the customer is already queued.
type AssignmentPolicy interface {
	Assign(c *Customer, lanes []*Lane) AssignmentDecision
}

// UnrestrictedRandom picks uniformly among all lanes, dropping a lane from
// the candidate pool each time it refuses. Express lanes are tried like any
// other and refuse large baskets, so this policy consumes more randomness
// than EligibilityFiltered for the same customers.
type UnrestrictedRandom struct {
	rng *rand.Rand
}

// Assign implements AssignmentPolicy for UnrestrictedRandom.
func (ur *UnrestrictedRandom) Assign(c *Customer, lanes []*Lane) AssignmentDecision {
	return assignFromPool(c, slices.Clone(lanes), ur.rng, "unrestricted-random")
}

// EligibilityFiltered restricts the candidate pool to lanes that accept the
// customer, then picks uniformly among them.
type EligibilityFiltered struct {
	rng *rand.Rand
}

// Assign implements AssignmentPolicy for EligibilityFiltered.
func (ef *EligibilityFiltered) Assign(c *Customer, lanes []*Lane) AssignmentDecision {
	eligible := make([]*Lane, 0, len(lanes))
	for _, l := range lanes {
		if l.Accepts(c) {
			eligible = append(eligible, l)
		}
	}
	return assignFromPool(c, eligible, ef.rng, "eligibility-filtered")
}

// assignFromPool draws lanes from pool until one accepts c. Every refusal
// shrinks the pool, so the loop runs at most len(pool) times.
func assignFromPool(c *Customer, pool []*Lane, rng *rand.Rand, policy string) AssignmentDecision {
	d := AssignmentDecision{}
	for len(pool) > 0 {
		idx := rng.Intn(len(pool))
		lane := pool[idx]
		d.Attempts++
		if lane.Add(c) {
			d.LaneID = lane.ID
			d.Assigned = true
			d.Reason = fmt.Sprintf("%s (lane=%d, attempts=%d)", policy, lane.ID, d.Attempts)
			return d
		}
		d.RejectedLanes = append(d.RejectedLanes, lane.ID)
		pool = slices.Delete(pool, idx, idx+1)
	}
	d.Reason = fmt.Sprintf("%s (no eligible lane for %d items)", policy, c.ItemCount)
	return d
}

// AssignmentResult summarizes an AssignAll pass.
type AssignmentResult struct {
	Assigned   int
	Unassigned []*Customer // customers no lane accepted, in input order
}

// AssignAll assigns customers in input order. Order matters: it fixes both the
// RNG draw sequence and each lane's queue order. tr may be nil.
func AssignAll(policy AssignmentPolicy, lanes []*Lane, customers []*Customer, tr *trace.SimulationTrace) AssignmentResult {
	var res AssignmentResult
	for _, c := range customers {
		d := policy.Assign(c, lanes)
		if tr != nil {
			tr.RecordAssignment(trace.AssignmentRecord{
				CustomerID:    c.ID,
				ItemCount:     c.ItemCount,
				ChosenLane:    d.LaneID,
				Assigned:      d.Assigned,
				Attempts:      d.Attempts,
				RejectedLanes: d.RejectedLanes,
				Reason:        d.Reason,
			})
		}
		if d.Assigned {
			res.Assigned++
			continue
		}
		logrus.Debugf("customer %d unassigned: %s", c.ID, d.Reason)
		res.Unassigned = append(res.Unassigned, c)
	}
	return res
}

// ValidAssignmentPolicies is the set of recognized assignment policy names.
// Shared by SimConfig.Validate() and NewAssignmentPolicy().
var ValidAssignmentPolicies = map[string]bool{"": true, "eligibility-filtered": true, "unrestricted-random": true}

// IsValidAssignmentPolicy reports whether name is a recognized policy.
func IsValidAssignmentPolicy(name string) bool {
	return ValidAssignmentPolicies[name]
}

// NewAssignmentPolicy creates an assignment policy by name.
// Empty string defaults to eligibility-filtered.
// Panics on unrecognized names.
func NewAssignmentPolicy(name string, rng *rand.Rand) AssignmentPolicy {
	if !IsValidAssignmentPolicy(name) {
		panic(fmt.Sprintf("unknown assignment policy %q", name))
	}
	if rng == nil {
		panic("NewAssignmentPolicy: rng must not be nil")
	}
	switch name {
	case "", "eligibility-filtered":
		return &EligibilityFiltered{rng: rng}
	case "unrestricted-random":
		return &UnrestrictedRandom{rng: rng}
	default:
		panic(fmt.Sprintf("unhandled assignment policy %q", name))
	}
}
