package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
	"go.uber.org/zap"
)

// PaymentService debits stored payment method balances. It is the only
// component that mutates a balance.
type PaymentService struct {
	methods port.PaymentMethodRepository
	logger  *zap.Logger
}

func NewPaymentService(methods port.PaymentMethodRepository, logger *zap.Logger) (*PaymentService, error) {
	return &PaymentService{
		methods: methods,
		logger:  logger,
	}, nil
}

// ProcessPayment debits amount from the customer's method of the given type.
// The balance check happens inside the repository's update closure, so a
// rejected charge leaves the stored balance untouched.
func (p *PaymentService) ProcessPayment(ctx context.Context, customerID uint64,
	methodType string, amount decimal.Decimal,
	creds domain.PaymentCredentials) (*domain.Receipt, error) {
	method, err := p.methods.GetPaymentMethod(ctx, customerID, methodType)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		p.logger.Error("Get payment method", zap.Error(err))
		return nil, err
	}

	_, err = p.methods.UpdateBalance(ctx, method.ID,
		func(m *domain.PaymentMethod) error {
			if m.Balance.Cmp(amount) < 0 {
				return domain.ErrInsufficientBalance
			}

			newBalance, err := m.Balance.Sub(amount)
			if err != nil {
				return fmt.Errorf("math error: %w", err)
			}
			m.Balance = newBalance

			return nil
		})
	if err != nil {
		return nil, err
	}

	receipt := &domain.Receipt{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		MethodType: method.Type,
		Amount:     amount,
		PaidAt:     time.Now(),
	}

	p.logger.Info("Payment processed",
		zap.Uint64("customer", customerID),
		zap.String("method", method.Type),
		zap.String("amount", amount.String()),
		zap.String("receipt", receipt.ID))

	return receipt, nil
}
