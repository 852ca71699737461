package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestComputeServiceTimes_ExpressAndNormalLane covers the two-lane reference case:
// experienced cashiers (3s/item, 20s checkout) on both lanes, a 5-item customer
// on the express lane and a 20-item customer on the normal lane.
func TestComputeServiceTimes_ExpressAndNormalLane(t *testing.T) {
	express := NewLane(1, NewCashier(1, true, 20, 1.0), true)
	normal := NewLane(2, NewCashier(2, true, 20, 1.0), false)
	small := NewCustomer(1, 5)
	large := NewCustomer(2, 20)

	require.True(t, express.Add(small))
	require.True(t, normal.Add(large))

	assert.Equal(t, 35.0, ComputeServiceTimes(express))
	assert.Equal(t, 80.0, ComputeServiceTimes(normal))
	assert.Equal(t, 35.0, express.TotalServiceTime)
	assert.Equal(t, 80.0, normal.TotalServiceTime)
	assert.Equal(t, 35.0, small.TotalTime)
	assert.Equal(t, 80.0, large.TotalTime)
}

func TestComputeServiceTimes_FIFOAccumulates(t *testing.T) {
	// GIVEN a 6s/item, 15s checkout cashier and baskets of 2, 4, 1 items
	lane := NewLane(1, NewCashier(1, false, 15, 1.0), false)
	cs := []*Customer{NewCustomer(1, 2), NewCustomer(2, 4), NewCustomer(3, 1)}
	for _, c := range cs {
		lane.Add(c)
	}

	// WHEN service times are computed
	total := ComputeServiceTimes(lane)

	// THEN service times are 27, 39, 21 and each customer waits for those ahead
	assert.Equal(t, 87.0, total)
	assert.Equal(t, 27.0, cs[0].TotalTime)
	assert.Equal(t, 66.0, cs[1].TotalTime)
	assert.Equal(t, 87.0, cs[2].TotalTime)
}

func TestComputeServiceTimes_EmptyLane_Zero(t *testing.T) {
	lane := NewLane(1, NewCashier(1, true, 20, 1.0), false)
	lane.TotalServiceTime = 123
	assert.Zero(t, ComputeServiceTimes(lane))
	assert.Zero(t, lane.TotalServiceTime)
}

func TestComputeServiceTimes_RecomputesAfterQueueChange(t *testing.T) {
	lane := NewLane(1, NewCashier(1, true, 20, 1.0), false)
	first, second := NewCustomer(1, 10), NewCustomer(2, 10)
	lane.Add(first)
	lane.Add(second)
	ComputeServiceTimes(lane)
	require.Equal(t, 100.0, second.TotalTime)

	// Removing the head moves the second customer up; recomputation must not
	// carry over the old wait.
	lane.Remove(first.ID)
	assert.Equal(t, 50.0, ComputeServiceTimes(lane))
	assert.Equal(t, 50.0, second.TotalTime)

	// Idempotent.
	assert.Equal(t, 50.0, ComputeServiceTimes(lane))
	assert.Equal(t, 50.0, second.TotalTime)
}

// TestComputeServiceTimes_RandomQueues_Invariants checks, for random queues,
// that the lane total is the sum of individual service times and that each
// customer's total is its own service time plus everything ahead of it.
func TestComputeServiceTimes_RandomQueues_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for trial := 0; trial < 50; trial++ {
		cashier := NewCashier(1, rng.Intn(2) == 0, float64(15+rng.Intn(16)), 0.5+rng.Float64())
		lane := NewLane(1, cashier, false)
		n := rng.Intn(20)
		for i := 1; i <= n; i++ {
			lane.Add(NewCustomer(i, 1+rng.Intn(50)))
		}

		ComputeServiceTimes(lane)

		sum := 0.0
		for _, c := range lane.Queue() {
			st := ServiceTime(c, cashier)
			want := st + sum
			if math.Abs(c.TotalTime-want) > 1e-9 {
				t.Fatalf("trial %d customer %d: TotalTime=%v, want %v", trial, c.ID, c.TotalTime, want)
			}
			sum += st
		}
		if math.Abs(lane.TotalServiceTime-sum) > 1e-9 {
			t.Fatalf("trial %d: TotalServiceTime=%v, want %v", trial, lane.TotalServiceTime, sum)
		}
	}
}
