package trace

// TraceSummary aggregates statistics from a SimulationTrace.
type TraceSummary struct {
	TotalDecisions   int
	AssignedCount    int
	UnassignedCount  int
	TotalRejections  int     // Lane.Add refusals across all decisions
	MeanAttempts     float64 // average Lane.Add calls per decision
	MaxAttempts      int
	UniqueLanes      int
	LaneDistribution map[int]int // lane ID → customers assigned
	DrainSteps       int
}

// Summarize computes aggregate statistics from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		LaneDistribution: make(map[int]int),
	}
	if st == nil {
		return summary
	}

	summary.TotalDecisions = len(st.Assignments)
	totalAttempts := 0
	for _, a := range st.Assignments {
		if a.Assigned {
			summary.AssignedCount++
			summary.LaneDistribution[a.ChosenLane]++
		} else {
			summary.UnassignedCount++
		}
		summary.TotalRejections += len(a.RejectedLanes)
		totalAttempts += a.Attempts
		if a.Attempts > summary.MaxAttempts {
			summary.MaxAttempts = a.Attempts
		}
	}
	if summary.TotalDecisions > 0 {
		summary.MeanAttempts = float64(totalAttempts) / float64(summary.TotalDecisions)
	}
	summary.UniqueLanes = len(summary.LaneDistribution)

	for _, d := range st.Drains {
		if d.Step > summary.DrainSteps {
			summary.DrainSteps = d.Step
		}
	}
	return summary
}
