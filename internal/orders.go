package internal

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultCourier is the courier contact attached to shipped orders. Its
// name feeds the courier chat handoff from the tracking view.
const DefaultCourier = "David Chen (Kurir)"

// Orders is the shared order store
type Orders struct {
	mu     sync.RWMutex
	orders []Order
	now    func() time.Time
}

// NewOrders creates an order store seeded with one in-flight demo order
func NewOrders() *Orders {
	o := &Orders{now: time.Now}
	o.orders = []Order{{
		ID:      "RNT-58A21F",
		Date:    "28 Aug 2026",
		Status:  StatusShipping,
		Total:   102500,
		Courier: DefaultCourier,
	}}
	return o
}

// PlaceOrder turns the cart contents into a confirmed order and clears the
// cart. An empty cart is rejected.
func (o *Orders) PlaceOrder(cart *Cart) (Order, error) {
	items := cart.Items()
	if len(items) == 0 {
		return Order{}, fmt.Errorf("cannot place an order from an empty cart")
	}

	order := Order{
		ID:      "RNT-" + strings.ToUpper(uuid.NewString()[:6]),
		Date:    o.now().Format("2 Jan 2006"),
		Status:  StatusConfirmed,
		Total:   cart.Subtotal(),
		Courier: DefaultCourier,
	}

	o.mu.Lock()
	o.orders = append([]Order{order}, o.orders...)
	o.mu.Unlock()

	cart.Clear()
	return order, nil
}

// Advance moves an order to its next fulfillment stage. Delivered orders
// stay delivered.
func (o *Orders) Advance(orderID string) (OrderStatus, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i := range o.orders {
		if o.orders[i].ID != orderID {
			continue
		}
		switch o.orders[i].Status {
		case StatusConfirmed:
			o.orders[i].Status = StatusPreparing
		case StatusPreparing:
			o.orders[i].Status = StatusShipping
		case StatusShipping:
			o.orders[i].Status = StatusDelivered
		}
		return o.orders[i].Status, nil
	}
	return "", fmt.Errorf("order %s not found", orderID)
}

// Get returns the order with the given id
func (o *Orders) Get(orderID string) (Order, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	for _, ord := range o.orders {
		if ord.ID == orderID {
			return ord, true
		}
	}
	return Order{}, false
}

// List returns a copy of the orders, newest first
func (o *Orders) List() []Order {
	o.mu.RLock()
	defer o.mu.RUnlock()

	out := make([]Order, len(o.orders))
	copy(out, o.orders)
	return out
}
