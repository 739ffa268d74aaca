package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyName     = errors.New("product name is required")
	ErrNegativePrice = errors.New("price must not be negative")
	ErrNegativeStock = errors.New("stock must not be negative")
)

// Product is the catalog aggregate sold through the storefront. Prices are
// integer cents.
type Product struct {
	ID          string
	Name        string
	Description string
	PriceCents  int64
	Images      []string
	Category    string
	Stock       int
	Featured    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct builds a product ensuring required invariants.
func NewProduct(id, name string, priceCents int64, stock int) (*Product, error) {
	product := &Product{ID: id, Stock: stock}
	if err := product.Rename(name); err != nil {
		return nil, err
	}
	if err := product.SetPrice(priceCents); err != nil {
		return nil, err
	}
	if err := product.Validate(); err != nil {
		return nil, err
	}
	return product, nil
}

// Rename trims and validates the product name.
func (p *Product) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	p.Name = name
	return nil
}

// SetPrice rejects negative amounts.
func (p *Product) SetPrice(cents int64) error {
	if cents < 0 {
		return ErrNegativePrice
	}
	p.PriceCents = cents
	return nil
}

// SetStock rejects negative counts.
func (p *Product) SetStock(stock int) error {
	if stock < 0 {
		return ErrNegativeStock
	}
	p.Stock = stock
	return nil
}

// AppendImage adds a public image URL to the product gallery.
func (p *Product) AppendImage(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		return
	}
	p.Images = append(p.Images, url)
}

// InStock reports whether at least one unit can be added to a cart.
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Validate re-applies core invariants for persistence.
func (p *Product) Validate() error {
	if err := p.Rename(p.Name); err != nil {
		return err
	}
	if err := p.SetPrice(p.PriceCents); err != nil {
		return err
	}
	if err := p.SetStock(p.Stock); err != nil {
		return err
	}
	return nil
}
