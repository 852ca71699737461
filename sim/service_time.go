package sim

// ServiceTime returns how long cashier takes to scan and check out c (seconds).
func ServiceTime(c *Customer, cashier *Cashier) float64 {
	return float64(c.ItemCount)*cashier.ScanTimePerItem() + cashier.CheckoutTime()
}

// ComputeServiceTimes recomputes the lane's TotalServiceTime and every queued
// customer's TotalTime from scratch.
//
// Single-server FIFO with no interruptions: each customer's total time is its
// own service time plus the service times of everyone ahead of it. Must be
// called again whenever the queue composition changes.
func ComputeServiceTimes(lane *Lane) float64 {
	timeAhead := 0.0
	for _, c := range lane.Queue() {
		st := ServiceTime(c, lane.cashier)
		c.TotalTime = st + timeAhead
		timeAhead += st
	}
	lane.TotalServiceTime = timeAhead
	return lane.TotalServiceTime
}

// ComputeAllServiceTimes runs ComputeServiceTimes over every lane.
func ComputeAllServiceTimes(lanes []*Lane) {
	for _, l := range lanes {
		ComputeServiceTimes(l)
	}
}
