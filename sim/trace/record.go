// Package trace provides decision-trace recording for lane assignment analysis.
// It has no dependencies on sim/ or sim/checkout/ and stores pure data types.
package trace

// AssignmentRecord captures a single lane assignment decision.
type AssignmentRecord struct {
	CustomerID    int
	ItemCount     int
	ChosenLane    int // 0 when Assigned is false
	Assigned      bool
	Attempts      int
	RejectedLanes []int // lanes that refused the customer, in attempt order
	Reason        string
}

// DrainRecord captures one customer leaving a lane during a drain step.
type DrainRecord struct {
	Step       int
	LaneID     int
	CustomerID int
}
