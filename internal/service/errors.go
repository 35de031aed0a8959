package service

import "errors"

// Sentinel errors the handlers map onto the HTTP taxonomy: bad input → 400,
// signature failure → 400, store failure during reconciliation → 500.
var (
	ErrUserIDRequired   = errors.New("userId required")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrInvalidQuantity  = errors.New("item quantity must be positive")
	ErrEmailNotFound    = errors.New("user email not found")
	ErrProductNotFound  = errors.New("some products not found")
	ErrInvalidSignature = errors.New("webhook signature verification failed")
	ErrStore            = errors.New("database error")
)
