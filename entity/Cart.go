package entity

import (
	"github.com/7pessoal-source/noir-menu-v2/pkg/money"
)

type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

func (it CartItem) LineTotal() money.Money {
	return it.Product.Price.MulQty(it.Quantity)
}

// Cart holds the items of one browsing session. At most one item per
// product; quantities are always >= 1 (dropping to zero removes the line).
// Not safe for concurrent use; the cart service serializes access.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add increments the quantity if the product is already in the cart,
// otherwise appends it with quantity 1. Always succeeds.
func (c *Cart) Add(p Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity++
			return
		}
	}
	c.Items = append(c.Items, CartItem{Product: p, Quantity: 1})
}

// UpdateQuantity sets the exact quantity for a product. qty <= 0 removes
// the line; an unknown product id is a no-op.
func (c *Cart) UpdateQuantity(productID uint, qty int) {
	if qty <= 0 {
		c.Remove(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = qty
			return
		}
	}
}

func (c *Cart) Remove(productID uint) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

// Subtotal is recomputed on every call, never cached.
func (c *Cart) Subtotal() money.Money {
	total := money.Zero()
	for _, it := range c.Items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool { return len(c.Items) == 0 }

// ItemByProduct is used by tests and the formatter to look up a line.
func (c *Cart) ItemByProduct(productID uint) (CartItem, bool) {
	for _, it := range c.Items {
		if it.Product.ID == productID {
			return it, true
		}
	}
	return CartItem{}, false
}
