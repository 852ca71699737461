// Package sim provides the core queueing engine for checkout-sim.
//
// # Reading Guide
//
// Start with these files to understand the engine:
//   - customer.go: Customer and Cashier entities
//   - lane.go: Lane (cashier + FIFO WaitQueue) and the express admission check
//   - assignment.go: policies that place customers into lanes
//   - service_time.go: the FIFO waiting-time recurrence
//   - cost.go: the cost/SLA evaluator producing a CostRecord
//
// # Architecture
//
// The sim package holds entities and pure algorithms; orchestration lives in
// sub-packages:
//   - sim/workload/: synthetic customer and cashier generation
//   - sim/checkout/: lane layout, full simulation passes, replicates and sweeps
//   - sim/trace/: assignment and drain decision traces
//
// # Determinism
//
// There is no global random state. Every random draw goes through a
// *rand.Rand obtained from PartitionedRNG.ForSubsystem, so a fixed seed and
// configuration reproduce lanes, customers and cost records exactly.
//
// # Key Interfaces
//
//   - AssignmentPolicy: place one customer into one lane
//   - workload.ItemSampler: draw basket sizes
package sim
