package port

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/wzlim/foodcourt/internal/core/domain"
)

//go:generate mockgen -source=service.go -destination=mock/service.go -package=mock

type OrderService interface {
	CreateOrder(ctx context.Context, customerID uint64, lines []*domain.OrderLine,
		paymentType string, creds domain.PaymentCredentials) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)

	// EstimateTotal sums the subtotals already stored on the lines. Display
	// only: the result never feeds the authoritative creation path.
	EstimateTotal(lines []*domain.OrderLine) float64
}

type PaymentService interface {
	ProcessPayment(ctx context.Context, customerID uint64, methodType string,
		amount decimal.Decimal, creds domain.PaymentCredentials) (*domain.Receipt, error)
}

type CatalogService interface {
	AddFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	GetFood(ctx context.Context, id uint64) (*domain.Food, error)
	ListFoods(ctx context.Context) ([]*domain.Food, error)
	UpdateFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	RemoveFood(ctx context.Context, id uint64) error
}

type CustomerService interface {
	RegisterCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id uint64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
	AddPaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	TopUpBalance(ctx context.Context, customerID uint64, methodType string,
		amount decimal.Decimal) (*domain.PaymentMethod, error)
}
