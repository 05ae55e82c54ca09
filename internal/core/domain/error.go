package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Order validation errors.
	ErrCustomerNotFound   = errors.New("customer not found")
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrNilOrderLine       = errors.New("order line cannot be nil")
	ErrQuantityOutOfRange = errors.New("quantity must be between 1 and 100")
	ErrUnitPriceMissing   = errors.New("unit price missing")
	ErrSubtotalMismatch   = errors.New("subtotal mismatch")

	// * Payment errors.
	ErrPaymentMethodNotFound = errors.New("payment method not found")
	ErrInsufficientBalance   = errors.New("balance is not enough")
	ErrPaymentFailed         = errors.New("payment failed")

	// * Catalog and customer errors.
	ErrFoodNameRequired  = errors.New("food name is required")
	ErrNegativePrice     = errors.New("price must not be negative")
	ErrNegativeTopUp     = errors.New("top-up amount must be positive")
	ErrCustomerNameEmpty = errors.New("customer name is required")
)
