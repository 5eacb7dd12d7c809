// Package cart holds the shopping cart: client-only state, never sent to
// the server. Entries keep a snapshot of the product at the time it was
// added, keyed by product id, in insertion order.
package cart

import "math"

type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type Item struct {
	Product
	Quantity int64 `json:"quantity"`
}

type Cart struct {
	items []Item
}

func New() *Cart {
	return &Cart{}
}

// Add increments the quantity when the product is already present,
// otherwise appends a new entry with quantity 1.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, Item{Product: p, Quantity: 1})
}

// SetQuantity updates an entry's quantity with a floor of 1. Removing an
// entry is an explicit Remove, never a side effect of reaching zero.
func (c *Cart) SetQuantity(productID, quantity int64) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Remove(productID int64) {
	kept := c.items[:0]
	for _, item := range c.items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	c.items = kept
}

func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Count is the total number of units across all entries.
func (c *Cart) Count() int64 {
	var n int64
	for _, item := range c.items {
		n += item.Quantity
	}
	return n
}

// Total sums price times quantity, rounded to 2 decimals.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.items {
		total += item.Price * float64(item.Quantity)
	}
	return math.Round(total*100) / 100
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Clear() {
	c.items = nil
}
