package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
	ErrEmptyProductID  = errors.New("product id is required")
)

// ProductSnapshot is the slice of catalog state a cart keeps per line. The
// snapshot is taken when the item is added; later catalog edits do not
// rewrite carts.
type ProductSnapshot struct {
	ID         string `json:"id" bson:"id"`
	Name       string `json:"name" bson:"name"`
	PriceCents int64  `json:"price_cents" bson:"price_cents"`
	Image      string `json:"image,omitempty" bson:"image,omitempty"`
	Category   string `json:"category,omitempty" bson:"category,omitempty"`
	Stock      int    `json:"stock" bson:"stock"`
}

// Item pairs a product snapshot with a quantity. Quantity is always >= 1
// while the item is present.
type Item struct {
	Product  ProductSnapshot `json:"product" bson:"product"`
	Quantity int             `json:"quantity" bson:"quantity"`
}

// Cart is the visitor's in-progress selection. Items keep insertion order
// (first added first) and hold at most one entry per product id.
type Cart struct {
	VisitorID string    `json:"visitor_id" bson:"visitor_id"`
	Items     []Item    `json:"items" bson:"items"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// New returns an empty cart for a visitor.
func New(visitorID string) *Cart {
	now := time.Now()
	return &Cart{VisitorID: visitorID, CreatedAt: now, UpdatedAt: now}
}

// AddItem merges the product into the cart: an existing entry has its
// quantity incremented by qty, otherwise a new entry is appended.
func (c *Cart) AddItem(product ProductSnapshot, qty int) error {
	if strings.TrimSpace(product.ID) == "" {
		return ErrEmptyProductID
	}
	if qty <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += qty
			c.touch()
			return nil
		}
	}
	c.Items = append(c.Items, Item{Product: product, Quantity: qty})
	c.touch()
	return nil
}

// RemoveItem deletes the entry for the product id. Removing an absent id is
// a no-op.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return
		}
	}
}

// UpdateQuantity sets the quantity for the product id. A quantity of zero or
// less removes the entry, so the present-entry invariant (quantity >= 1)
// always holds. Unknown product ids are a no-op.
func (c *Cart) UpdateQuantity(productID string, qty int) {
	if qty <= 0 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = qty
			c.touch()
			return
		}
	}
}

// Total computes the sum of price x quantity over all entries, fresh on
// every call.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Product.PriceCents * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the sum of quantities, used for the header badge.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Clear empties the cart. Called once, after an order is placed.
func (c *Cart) Clear() {
	c.Items = nil
	c.touch()
}

// IsEmpty reports whether the cart has no entries.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func (c *Cart) touch() {
	c.UpdatedAt = time.Now()
}
