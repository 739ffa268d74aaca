package application

import "errors"

// ErrEmptyCart rejects order placement when the visitor's cart has no items.
var ErrEmptyCart = errors.New("cart is empty")
