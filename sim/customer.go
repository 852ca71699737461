// Defines the Customer and Cashier entities that flow through the checkout area.

package sim

import "fmt"

// Customer models a single shopper waiting at a checkout lane.
//
// ID is assigned once at creation and never reused within a run; redistribution
// and draining refer to customers by ID rather than by queue position.
type Customer struct {
	ID        int     // Stable identifier, 1-based in generation order
	ItemCount int     // Number of items in the basket (1-50)
	TotalTime float64 // Seconds from the start of the run until checkout completes; set by ComputeServiceTimes
}

// NewCustomer creates a customer with the given ID and basket size.
func NewCustomer(id, itemCount int) *Customer {
	return &Customer{ID: id, ItemCount: itemCount}
}

func (c *Customer) String() string {
	if c.TotalTime > 0 {
		return fmt.Sprintf("customer_%d(items=%d, total=%.2fs)", c.ID, c.ItemCount, c.TotalTime)
	}
	return fmt.Sprintf("customer_%d(items=%d)", c.ID, c.ItemCount)
}

// Base per-item scan times in seconds, before the service multiplier is applied.
const (
	ExperiencedScanTimePerItem   = 3.0
	InexperiencedScanTimePerItem = 6.0
)

// Cashier checkout time bounds in seconds (inclusive), before the service multiplier.
const (
	MinCheckoutTime = 15
	MaxCheckoutTime = 30
)

// Cashier is the server attached to a lane. Immutable after NewCashier.
type Cashier struct {
	id              int
	hasExperience   bool
	scanTimePerItem float64
	checkoutTime    float64
}

// NewCashier creates a cashier. checkoutTime is the unscaled payment time in
// seconds; both the scan and checkout times are scaled by serviceMultiplier.
func NewCashier(id int, hasExperience bool, checkoutTime, serviceMultiplier float64) *Cashier {
	scan := InexperiencedScanTimePerItem
	if hasExperience {
		scan = ExperiencedScanTimePerItem
	}
	return &Cashier{
		id:              id,
		hasExperience:   hasExperience,
		scanTimePerItem: scan * serviceMultiplier,
		checkoutTime:    checkoutTime * serviceMultiplier,
	}
}

func (c *Cashier) ID() int                  { return c.id }
func (c *Cashier) HasExperience() bool      { return c.hasExperience }
func (c *Cashier) ScanTimePerItem() float64 { return c.scanTimePerItem }
func (c *Cashier) CheckoutTime() float64    { return c.checkoutTime }

func (c *Cashier) String() string {
	level := "inexperienced"
	if c.hasExperience {
		level = "experienced"
	}
	return fmt.Sprintf("cashier_%d(%s, scan=%.2fs/item, checkout=%.2fs)", c.id, level, c.scanTimePerItem, c.checkoutTime)
}
