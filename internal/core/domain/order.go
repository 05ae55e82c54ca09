package domain

import (
	"time"

	"github.com/govalues/decimal"
)

type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// OrderLine is built by the presentation layer and consumed once by the
// order service. UnitPrice and Subtotal are nullable on purpose: the
// service treats them as unverified claims.
type OrderLine struct {
	Food      *Food
	Quantity  int
	UnitPrice *decimal.Decimal
	Subtotal  *decimal.Decimal
}

type Order struct {
	ID        uint64
	CreatedAt time.Time
	Customer  *Customer
	Lines     []*OrderLine
	Total     decimal.Decimal
	Payment   *PaymentMethod
	Status    OrderStatus
}

// NewCompletedOrder builds the persisted form of an order. Every field is
// known at the single construction site in the order service, so there is
// no partial-construction state. The store assigns ID on save.
func NewCompletedOrder(customer *Customer, lines []*OrderLine,
	total decimal.Decimal, payment *PaymentMethod) *Order {
	return &Order{
		CreatedAt: time.Now(),
		Customer:  customer,
		Lines:     lines,
		Total:     total,
		Payment:   payment,
		Status:    OrderStatusCompleted,
	}
}
