// Implements the WaitQueue, which holds the customers lined up at one lane.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is a FIFO line of customers. Position 0 is served first.
type WaitQueue struct {
	queue []*Customer
}

// Enqueue adds a customer to the back of the line.
func (wq *WaitQueue) Enqueue(c *Customer) {
	if c == nil {
		panic("Enqueue: customer must not be nil")
	}
	wq.queue = append(wq.queue, c)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, val := range wq.queue {
		sb.WriteString(fmt.Sprint(val))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Len returns the number of customers in the line.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

// Peek returns the customer at the front of the line without removing it.
// Returns nil if the line is empty.
func (wq *WaitQueue) Peek() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers MUST NOT
// append to or reslice it.
func (wq *WaitQueue) Items() []*Customer {
	return wq.queue
}

// Dequeue removes and returns the customer at the front of the line.
// Returns nil if the line is empty.
func (wq *WaitQueue) Dequeue() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	c := wq.queue[0]
	wq.queue[0] = nil
	wq.queue = wq.queue[1:]
	return c
}

// Remove takes the customer with the given ID out of the line, keeping the
// relative order of everyone else. Returns nil if no such customer is queued.
func (wq *WaitQueue) Remove(customerID int) *Customer {
	for i, c := range wq.queue {
		if c.ID == customerID {
			wq.queue = append(wq.queue[:i:i], wq.queue[i+1:]...)
			return c
		}
	}
	return nil
}
