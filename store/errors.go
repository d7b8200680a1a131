package store

import "errors"

// Validation failures surfaced to the initiating user. None are retried
// and none are fatal; every mutating operation either fully applies or
// rejects before touching state.
var (
	ErrUnknownItem         = errors.New("menu item does not exist")
	ErrItemUnavailable     = errors.New("menu item is not available")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrInsufficientBalance = errors.New("insufficient wallet balance")
	ErrInvalidAmount       = errors.New("invalid recharge amount")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrNotFound            = errors.New("not found")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrAlreadyRated        = errors.New("order already rated")
	ErrTokenSpaceExhausted = errors.New("no free token numbers")
)
