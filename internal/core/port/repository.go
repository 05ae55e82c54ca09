package port

import (
	"context"

	"github.com/wzlim/foodcourt/internal/core/domain"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock

type CustomerRepository interface {
	CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id uint64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}

type FoodRepository interface {
	CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	GetFood(ctx context.Context, id uint64) (*domain.Food, error)
	ListFoods(ctx context.Context) ([]*domain.Food, error)
	UpdateFood(ctx context.Context, food *domain.Food) (*domain.Food, error)
	DeleteFood(ctx context.Context, id uint64) error
}

// UpdateBalanceFn mutates a payment method inside the store's write lock.
// Returning an error aborts the update and leaves the stored balance as-is.
type UpdateBalanceFn func(*domain.PaymentMethod) error

type PaymentMethodRepository interface {
	CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error)
	// GetPaymentMethod matches the type tag case-insensitively.
	GetPaymentMethod(ctx context.Context, customerID uint64, methodType string) (*domain.PaymentMethod, error)
	UpdateBalance(ctx context.Context, methodID uint64, updateFn UpdateBalanceFn) (*domain.PaymentMethod, error)
}

type OrderRepository interface {
	// SaveOrder assigns the order id and returns the stored order.
	SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error)
	ListOrders(ctx context.Context) ([]*domain.Order, error)
	ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error)
}
