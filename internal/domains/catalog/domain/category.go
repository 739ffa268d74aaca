package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyCategoryName = errors.New("category name is required")
	ErrEmptySlug         = errors.New("category slug is required")
)

// Category groups products for browsing.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	CreatedAt   time.Time
}

// Validate enforces the naming invariants.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return ErrEmptyCategoryName
	}
	c.Slug = strings.TrimSpace(c.Slug)
	if c.Slug == "" {
		return ErrEmptySlug
	}
	return nil
}
