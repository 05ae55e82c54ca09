package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type PaymentMethod struct {
	ID         uint64
	CustomerID uint64
	Type       string
	Balance    decimal.Decimal
}

// PaymentCredentials are passed through to the payment authority as-is.
// The console layer is responsible for sanitizing them before hand-off.
type PaymentCredentials struct {
	CardNumber string
	Expiry     string
}

type Receipt struct {
	ID         string
	CustomerID uint64
	MethodType string
	Amount     decimal.Decimal
	PaidAt     time.Time
}
