package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ExpressItemLimit is the largest basket an express lane accepts.
const ExpressItemLimit = 10

// Lane is one checkout line: a cashier serving a FIFO queue of customers.
//
// Express lanes are the same type with the Express flag set; the only
// behavioral difference is the admission check in Accepts.
type Lane struct {
	ID      int
	Express bool

	cashier *Cashier
	queue   WaitQueue

	// TotalServiceTime is the sum of service times of the queued customers
	// as of the last ComputeServiceTimes call (seconds).
	TotalServiceTime float64
}

// NewLane creates an empty lane served by cashier.
func NewLane(id int, cashier *Cashier, express bool) *Lane {
	if cashier == nil {
		panic(fmt.Sprintf("NewLane: lane %d needs a cashier", id))
	}
	return &Lane{ID: id, Express: express, cashier: cashier}
}

// Cashier returns the cashier that owns this lane.
func (l *Lane) Cashier() *Cashier {
	return l.cashier
}

// Accepts reports whether c may join this lane.
func (l *Lane) Accepts(c *Customer) bool {
	return !l.Express || c.ItemCount <= ExpressItemLimit
}

// Add appends c to the back of the queue. Returns false, leaving the queue
// untouched, when the lane refuses the customer.
func (l *Lane) Add(c *Customer) bool {
	if !l.Accepts(c) {
		logrus.Debugf("lane %d (express) refused customer %d with %d items", l.ID, c.ID, c.ItemCount)
		return false
	}
	l.queue.Enqueue(c)
	return true
}

// Queue returns the customers in service order. Callers MUST NOT modify the slice.
func (l *Lane) Queue() []*Customer {
	return l.queue.Items()
}

// Len returns the number of queued customers.
func (l *Lane) Len() int {
	return l.queue.Len()
}

// Remove takes the customer with the given ID out of the queue.
// TotalServiceTime is stale until the next ComputeServiceTimes.
func (l *Lane) Remove(customerID int) *Customer {
	return l.queue.Remove(customerID)
}

// ServeNext removes the customer at the head of the queue, as when the
// cashier finishes with them. Returns nil when the lane is empty.
func (l *Lane) ServeNext() *Customer {
	return l.queue.Dequeue()
}

func (l *Lane) String() string {
	kind := "normal"
	if l.Express {
		kind = "express"
	}
	return fmt.Sprintf("lane_%d(%s, %v, %d customers, total=%.2fs)", l.ID, kind, l.cashier, l.queue.Len(), l.TotalServiceTime)
}
