package workload

import (
	"math/rand"

	"github.com/inference-sim/checkout-sim/sim"
)

// Basket size bounds (inclusive).
const (
	MinItems = 1
	MaxItems = 50
)

// ItemSampler generates basket sizes.
type ItemSampler interface {
	// Sample returns an item count in [MinItems, MaxItems].
	Sample(rng *rand.Rand) int
}

// UniformItemSampler draws basket sizes uniformly from [MinItems, MaxItems].
type UniformItemSampler struct{}

func (UniformItemSampler) Sample(rng *rand.Rand) int {
	return uniformInt(rng, MinItems, MaxItems)
}

// ExpressBiasedItemSampler splits customers into small baskets that fit the
// express lane and large baskets that do not.
// With probability ratio the size is uniform over [1, ExpressItemLimit],
// otherwise uniform over [ExpressItemLimit+1, MaxItems].
type ExpressBiasedItemSampler struct {
	ratio float64
}

// NewExpressBiasedItemSampler creates a sampler with the given small-basket probability.
func NewExpressBiasedItemSampler(ratio float64) *ExpressBiasedItemSampler {
	return &ExpressBiasedItemSampler{ratio: ratio}
}

func (s *ExpressBiasedItemSampler) Sample(rng *rand.Rand) int {
	if rng.Float64() < s.ratio {
		return uniformInt(rng, MinItems, sim.ExpressItemLimit)
	}
	return uniformInt(rng, sim.ExpressItemLimit+1, MaxItems)
}

// NewItemSampler picks the sampler described by cfg. ExpressRatio is used
// as given; 0 means every basket is too large for the express lane.
func NewItemSampler(cfg sim.GeneratorConfig) ItemSampler {
	if !cfg.ExpressBias {
		return UniformItemSampler{}
	}
	return NewExpressBiasedItemSampler(cfg.ExpressRatio)
}

// uniformInt returns an integer uniformly distributed over [lo, hi].
func uniformInt(rng *rand.Rand, lo, hi int) int {
	return lo + rng.Intn(hi-lo+1)
}
