package domain

import (
	"errors"
	"strings"
	"time"
)

// Status enumerates order progression.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

var (
	ErrNoItems           = errors.New("order must contain at least one item")
	ErrInvalidQuantity   = errors.New("line quantity must be greater than zero")
	ErrEmptyEmail        = errors.New("customer email is required")
	ErrInvalidStatus     = errors.New("order status is invalid")
	ErrInvalidTransition = errors.New("order status transition is not allowed")
)

// Line is a frozen snapshot of one purchased product. Catalog edits after
// placement do not rewrite order history.
type Line struct {
	ProductID    string
	ProductName  string
	ProductPrice int64
	ProductImage string
	Quantity     int
}

// Order models a placed purchase.
type Order struct {
	ID         string
	UserEmail  string
	UserName   string
	Address    string
	City       string
	PostalCode string
	Country    string
	Items      []Line
	TotalCents int64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate enforces invariants on the aggregate.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.UserEmail) == "" {
		return ErrEmptyEmail
	}
	if len(o.Items) == 0 {
		return ErrNoItems
	}
	for _, line := range o.Items {
		if line.Quantity <= 0 {
			return ErrInvalidQuantity
		}
	}
	if !isValidStatus(o.Status) {
		return ErrInvalidStatus
	}
	return nil
}

// UpdateStatus moves the order along the fulfillment progression. Orders can
// be cancelled any time before they ship; every other move follows
// pending -> processing -> shipped -> delivered.
func (o *Order) UpdateStatus(next Status) error {
	if next == "" {
		next = StatusPending
	}
	if !isValidStatus(next) {
		return ErrInvalidStatus
	}
	if next == o.Status {
		return nil
	}
	if !canTransition(o.Status, next) {
		return ErrInvalidTransition
	}
	o.Status = next
	return nil
}

func canTransition(from, to Status) bool {
	if to == StatusCancelled {
		return from == StatusPending || from == StatusProcessing
	}
	switch from {
	case StatusPending:
		return to == StatusProcessing
	case StatusProcessing:
		return to == StatusShipped
	case StatusShipped:
		return to == StatusDelivered
	default:
		return false
	}
}

func isValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}
