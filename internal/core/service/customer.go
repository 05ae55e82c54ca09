package service

import (
	"context"
	"errors"

	"github.com/govalues/decimal"
	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
	"go.uber.org/zap"
)

type CustomerService struct {
	customers port.CustomerRepository
	methods   port.PaymentMethodRepository
	logger    *zap.Logger
}

func NewCustomerService(customers port.CustomerRepository,
	methods port.PaymentMethodRepository, logger *zap.Logger) (*CustomerService, error) {
	return &CustomerService{
		customers: customers,
		methods:   methods,
		logger:    logger,
	}, nil
}

func (s *CustomerService) RegisterCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	if customer.Name == "" {
		return nil, domain.ErrCustomerNameEmpty
	}

	created, err := s.customers.CreateCustomer(ctx, customer)
	if err != nil {
		s.logger.Error("Create customer", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint64) (*domain.Customer, error) {
	customer, err := s.customers.GetCustomer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	list, err := s.customers.ListCustomers(ctx)
	if err != nil {
		s.logger.Error("List customers", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *CustomerService) AddPaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	if _, err := s.GetCustomer(ctx, method.CustomerID); err != nil {
		return nil, err
	}
	if method.Balance.IsNeg() {
		return nil, domain.ErrNegativePrice
	}

	created, err := s.methods.CreatePaymentMethod(ctx, method)
	if err != nil {
		s.logger.Error("Create payment method", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *CustomerService) TopUpBalance(ctx context.Context, customerID uint64,
	methodType string, amount decimal.Decimal) (*domain.PaymentMethod, error) {
	if !amount.IsPos() {
		return nil, domain.ErrNegativeTopUp
	}

	method, err := s.methods.GetPaymentMethod(ctx, customerID, methodType)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		return nil, err
	}

	updated, err := s.methods.UpdateBalance(ctx, method.ID,
		func(m *domain.PaymentMethod) error {
			newBalance, err := m.Balance.Add(amount)
			if err != nil {
				return err
			}
			m.Balance = newBalance
			return nil
		})
	if err != nil {
		s.logger.Error("Top up balance", zap.Error(err))
		return nil, err
	}
	return updated, nil
}
