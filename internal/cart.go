package internal

import "sync"

// Cart is the shared cart store: an ordered sequence of line items.
type Cart struct {
	mu    sync.RWMutex
	items []CartItem
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{}
}

// SeedDemo fills the cart with the demo lines referencing catalog products
func (c *Cart) SeedDemo(catalog *Catalog) {
	products := catalog.List()
	if len(products) > 0 {
		c.Add(products[0], 2)
	}
	if len(products) > 2 {
		c.Add(products[2], 1)
	}
}

// Add puts a product in the cart, incrementing the quantity if the product
// already has a line.
func (c *Cart) Add(p Product, quantity int) {
	if quantity < 1 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity += quantity
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, Quantity: quantity})
}

// Adjust changes a line's quantity by delta. The quantity never drops below
// one; an adjustment that would is ignored.
func (c *Cart) Adjust(productID string, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			if q := c.items[i].Quantity + delta; q > 0 {
				c.items[i].Quantity = q
			}
			return
		}
	}
}

// Remove drops the line for the given product
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the cart lines in insertion order
func (c *Cart) Items() []CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Subtotal returns the cart total in rupiah
func (c *Cart) Subtotal() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var total int64
	for _, item := range c.items {
		total += item.Price * int64(item.Quantity)
	}
	return total
}
