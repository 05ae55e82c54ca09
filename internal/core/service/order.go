package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
	"github.com/wzlim/foodcourt/internal/core/utils"
	"go.uber.org/zap"
)

// maxLineQuantity caps a single order line. Anything above this is assumed
// to be a typo in the quantity prompt rather than a real order.
const maxLineQuantity = 100

type OrderService struct {
	customers port.CustomerRepository
	methods   port.PaymentMethodRepository
	orders    port.OrderRepository
	payment   port.PaymentService
	logger    *zap.Logger
}

func NewOrderService(customers port.CustomerRepository, methods port.PaymentMethodRepository,
	orders port.OrderRepository, payment port.PaymentService, logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		customers: customers,
		methods:   methods,
		orders:    orders,
		payment:   payment,
		logger:    logger,
	}, nil
}

// CreateOrder validates the proposed lines, recomputes the total from the
// stored unit prices, debits the payment method and persists the order.
// Client-supplied subtotals are never trusted: each one is checked against
// the recomputed value and the whole call fails on the first mismatch.
// Nothing is persisted unless every gate and the payment debit succeed.
func (s *OrderService) CreateOrder(ctx context.Context, customerID uint64,
	lines []*domain.OrderLine, paymentType string,
	creds domain.PaymentCredentials) (*domain.Order, error) {
	customer, err := s.customers.GetCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		s.logger.Error("Get customer", zap.Error(err))
		return nil, err
	}

	if len(lines) == 0 {
		return nil, domain.ErrEmptyOrder
	}

	total := decimal.Zero
	for _, line := range lines {
		expected, err := s.verifyLine(line)
		if err != nil {
			return nil, err
		}
		total, err = total.Add(expected)
		if err != nil {
			return nil, fmt.Errorf("math error: %w", err)
		}
	}

	total, err = utils.RoundMoney(total)
	if err != nil {
		return nil, fmt.Errorf("math error: %w", err)
	}

	method, err := s.methods.GetPaymentMethod(ctx, customerID, paymentType)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.ErrPaymentMethodNotFound
		}
		s.logger.Error("Get payment method", zap.Error(err))
		return nil, err
	}

	receipt, err := s.payment.ProcessPayment(ctx, customerID, paymentType, total, creds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrPaymentFailed, err)
	}

	order := domain.NewCompletedOrder(customer, lines, total, method)

	saved, err := s.orders.SaveOrder(ctx, order)
	if err != nil {
		// The debit has already happened at this point and is not rolled
		// back. See DESIGN.md.
		s.logger.Error("Save order after successful debit",
			zap.String("receipt", receipt.ID), zap.Error(err))
		return nil, err
	}

	s.logger.Info("Order completed",
		zap.Uint64("order", saved.ID),
		zap.Uint64("customer", customerID),
		zap.String("total", total.String()),
		zap.String("receipt", receipt.ID))

	return saved, nil
}

// verifyLine checks one proposed line and returns the recomputed subtotal.
func (s *OrderService) verifyLine(line *domain.OrderLine) (decimal.Decimal, error) {
	if line == nil {
		return decimal.Decimal{}, domain.ErrNilOrderLine
	}
	if line.Quantity <= 0 || line.Quantity > maxLineQuantity {
		return decimal.Decimal{}, fmt.Errorf("%w: got %d", domain.ErrQuantityOutOfRange, line.Quantity)
	}
	if line.UnitPrice == nil {
		return decimal.Decimal{}, domain.ErrUnitPriceMissing
	}

	raw, err := utils.MulQuantity(*line.UnitPrice, line.Quantity)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}
	expected, err := utils.RoundMoney(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
	}

	// An absent subtotal is compared as zero, so it fails the same way a
	// wrong one does.
	claimed := decimal.Zero
	if line.Subtotal != nil {
		claimed, err = utils.RoundMoney(*line.Subtotal)
		if err != nil {
			return decimal.Decimal{}, fmt.Errorf("math error: %w", err)
		}
	}

	if expected.Cmp(claimed) != 0 {
		return decimal.Decimal{}, fmt.Errorf("%w for item %d", domain.ErrSubtotalMismatch, lineFoodID(line))
	}

	return expected, nil
}

func lineFoodID(line *domain.OrderLine) uint64 {
	if line.Food == nil {
		return 0
	}
	return line.Food.ID
}

func (s *OrderService) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	list, err := s.orders.ListOrders(ctx)
	if err != nil {
		s.logger.Error("List orders", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *OrderService) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	list, err := s.orders.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		s.logger.Error("List orders for customer", zap.Error(err))
		return nil, err
	}
	return list, nil
}

// EstimateTotal sums the subtotals already stored on the lines. Used by the
// console order summary before checkout; float64 is fine here because the
// result is display-only and never persisted.
func (s *OrderService) EstimateTotal(lines []*domain.OrderLine) float64 {
	total := 0.0
	for _, line := range lines {
		if line == nil || line.Subtotal == nil {
			continue
		}
		f, _ := line.Subtotal.Float64()
		total += f
	}
	return total
}
