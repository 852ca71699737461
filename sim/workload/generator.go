package workload

import (
	"math/rand"

	"github.com/inference-sim/checkout-sim/sim"
)

// GenerateCustomers creates count customers with IDs 1..count.
// Deterministic given the same rng state and sampler.
// Returns an empty slice for count <= 0.
func GenerateCustomers(rng *rand.Rand, count int, sampler ItemSampler) []*sim.Customer {
	if count <= 0 {
		return []*sim.Customer{}
	}
	customers := make([]*sim.Customer, 0, count)
	for i := 1; i <= count; i++ {
		customers = append(customers, sim.NewCustomer(i, sampler.Sample(rng)))
	}
	return customers
}

// GenerateCashiers creates count cashiers with IDs 1..count. Each has an
// independent 50% chance of experience and a checkout time drawn uniformly
// from [MinCheckoutTime, MaxCheckoutTime] seconds; serviceMultiplier scales
// both the scan and checkout times.
// Returns an empty slice for count <= 0.
func GenerateCashiers(rng *rand.Rand, count int, serviceMultiplier float64) []*sim.Cashier {
	if count <= 0 {
		return []*sim.Cashier{}
	}
	cashiers := make([]*sim.Cashier, 0, count)
	for i := 1; i <= count; i++ {
		experienced := rng.Intn(2) == 0
		checkout := float64(uniformInt(rng, sim.MinCheckoutTime, sim.MaxCheckoutTime))
		cashiers = append(cashiers, sim.NewCashier(i, experienced, checkout, serviceMultiplier))
	}
	return cashiers
}

// Generate produces the cashiers and customers for one run, drawing each from
// its own RNG subsystem so the two sequences never influence each other.
func Generate(cfg sim.GeneratorConfig, cashierCount int, rng *sim.PartitionedRNG) ([]*sim.Cashier, []*sim.Customer) {
	cashiers := GenerateCashiers(rng.ForSubsystem(sim.SubsystemCashiers), cashierCount, cfg.ServiceMultiplier)
	customers := GenerateCustomers(rng.ForSubsystem(sim.SubsystemCustomers), cfg.Customers, NewItemSampler(cfg))
	return cashiers, customers
}
