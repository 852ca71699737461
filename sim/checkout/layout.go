package checkout

import (
	"fmt"
	"math/rand"

	"github.com/inference-sim/checkout-sim/sim"
)

// ExpressPosition says which lane in the row is the express lane.
type ExpressPosition string

const (
	ExpressFirst  ExpressPosition = "first"
	ExpressMiddle ExpressPosition = "middle"
	ExpressLast   ExpressPosition = "last"
	ExpressRandom ExpressPosition = "random"
)

// Index returns the 0-based position of the express lane among n lanes.
// rng is only consulted for ExpressRandom.
func (p ExpressPosition) Index(n int, rng *rand.Rand) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("express position: need at least one lane, got %d", n)
	}
	switch p {
	case ExpressFirst:
		return 0, nil
	case ExpressMiddle:
		return n / 2, nil
	case ExpressLast:
		return n - 1, nil
	case ExpressRandom:
		if rng == nil {
			return 0, fmt.Errorf("express position %q needs an rng", p)
		}
		return rng.Intn(n), nil
	default:
		return 0, fmt.Errorf("unknown express position %q", p)
	}
}

// BuildLanes opens one lane per cashier, IDs 1..n in cashier order, and marks
// exactly one of them express. At least two cashiers are required so that
// large baskets always have a non-express lane.
func BuildLanes(cashiers []*sim.Cashier, pos ExpressPosition, rng *rand.Rand) ([]*sim.Lane, error) {
	if len(cashiers) < 2 {
		return nil, fmt.Errorf("build lanes: need at least 2 cashiers, got %d", len(cashiers))
	}
	expressIdx, err := pos.Index(len(cashiers), rng)
	if err != nil {
		return nil, fmt.Errorf("build lanes: %w", err)
	}
	lanes := make([]*sim.Lane, len(cashiers))
	for i, c := range cashiers {
		lanes[i] = sim.NewLane(i+1, c, i == expressIdx)
	}
	return lanes, nil
}
