package service_test

import (
	"context"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wzlim/foodcourt/internal/adapter/storage/memory"
	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
	"github.com/wzlim/foodcourt/internal/core/service"
	"github.com/wzlim/foodcourt/internal/core/utils"
	"go.uber.org/zap"
)

type testEnv struct {
	store    *memory.Store
	orders   port.OrderService
	payment  port.PaymentService
	catalog  port.CatalogService
	customer port.CustomerService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := zap.NewNop()
	store := memory.NewStore()
	require.NoError(t, store.Seed(context.Background()))

	payment, err := service.NewPaymentService(store, logger)
	require.NoError(t, err)
	orders, err := service.NewOrderService(store, store, store, payment, logger)
	require.NoError(t, err)
	catalog, err := service.NewCatalogService(store, logger)
	require.NoError(t, err)
	customer, err := service.NewCustomerService(store, store, logger)
	require.NoError(t, err)

	return &testEnv{
		store:    store,
		orders:   orders,
		payment:  payment,
		catalog:  catalog,
		customer: customer,
	}
}

func makeLine(t *testing.T, food *domain.Food, quantity int) *domain.OrderLine {
	t.Helper()

	unit := food.Price
	raw, err := utils.MulQuantity(unit, quantity)
	require.NoError(t, err)
	subtotal, err := utils.RoundMoney(raw)
	require.NoError(t, err)
	return &domain.OrderLine{
		Food:      food,
		Quantity:  quantity,
		UnitPrice: &unit,
		Subtotal:  &subtotal,
	}
}

func TestScenario_HappyPath(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)
	assert.Equal(t, "10.00", food.Price.String())

	before, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, before)

	order, err := env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{makeLine(t, food, 2)},
		"TNG", domain.PaymentCredentials{})
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, "20.00", order.Total.String())
	assert.NotZero(t, order.ID)
	assert.False(t, order.CreatedAt.IsZero())

	after, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 1)

	method, err := env.store.GetPaymentMethod(ctx, 1000, "TNG")
	require.NoError(t, err)
	assert.Equal(t, "80.00", method.Balance.String())
}

func TestScenario_MissingSubtotalRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)

	line := makeLine(t, food, 2)
	line.Subtotal = nil

	_, err = env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{line}, "TNG", domain.PaymentCredentials{})
	assert.ErrorIs(t, err, domain.ErrSubtotalMismatch)

	assertStoreUntouched(t, env)
}

func TestScenario_WrongSubtotalRejected(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)

	line := makeLine(t, food, 2)
	wrong := decimal.MustParse("25.00")
	line.Subtotal = &wrong

	_, err = env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{line}, "TNG", domain.PaymentCredentials{})
	assert.ErrorIs(t, err, domain.ErrSubtotalMismatch)
	assert.Contains(t, err.Error(), "2000")

	assertStoreUntouched(t, env)
}

func TestScenario_UnknownCustomer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)

	_, err = env.orders.CreateOrder(ctx, 9999,
		[]*domain.OrderLine{makeLine(t, food, 1)},
		"TNG", domain.PaymentCredentials{})
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)

	assertStoreUntouched(t, env)
}

func TestScenario_UnknownPaymentMethod(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)

	_, err = env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{makeLine(t, food, 1)},
		"Cheque", domain.PaymentCredentials{})
	assert.ErrorIs(t, err, domain.ErrPaymentMethodNotFound)

	assertStoreUntouched(t, env)
}

func TestScenario_InsufficientBalance(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	poor, err := env.customer.RegisterCustomer(ctx, &domain.Customer{Name: "Mary", Age: 30})
	require.NoError(t, err)
	_, err = env.customer.AddPaymentMethod(ctx, &domain.PaymentMethod{
		CustomerID: poor.ID,
		Type:       "TNG",
		Balance:    decimal.MustParse("5.00"),
	})
	require.NoError(t, err)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)

	_, err = env.orders.CreateOrder(ctx, poor.ID,
		[]*domain.OrderLine{makeLine(t, food, 2)},
		"TNG", domain.PaymentCredentials{})
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	// The rejected charge must not touch the balance.
	method, err := env.store.GetPaymentMethod(ctx, poor.ID, "TNG")
	require.NoError(t, err)
	assert.Equal(t, "5.00", method.Balance.String())

	orders, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestScenario_QuantityBoundaries(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	// Roti Canai at 1.80 keeps even a 100x line inside the Card balance.
	food, err := env.catalog.GetFood(ctx, 2002)
	require.NoError(t, err)
	require.Equal(t, "1.80", food.Price.String())

	one, err := env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{makeLine(t, food, 1)},
		"TNG", domain.PaymentCredentials{})
	require.NoError(t, err)
	assert.Equal(t, "1.80", one.Total.String())

	hundred, err := env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{makeLine(t, food, 100)},
		"Card", domain.PaymentCredentials{CardNumber: "4539148803436467"})
	require.NoError(t, err)
	assert.Equal(t, "180.00", hundred.Total.String())

	for _, quantity := range []int{0, -1, 101} {
		line := makeLine(t, food, 1)
		line.Quantity = quantity
		_, err := env.orders.CreateOrder(ctx, 1000,
			[]*domain.OrderLine{line}, "TNG", domain.PaymentCredentials{})
		assert.ErrorIs(t, err, domain.ErrQuantityOutOfRange, "quantity %d", quantity)
	}
}

func TestScenario_MultiLineTotal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	nasiLemak, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)
	tehTarik, err := env.catalog.GetFood(ctx, 2004)
	require.NoError(t, err)
	require.Equal(t, "2.50", tehTarik.Price.String())

	order, err := env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{
			makeLine(t, nasiLemak, 2),
			makeLine(t, tehTarik, 3),
		},
		"Card", domain.PaymentCredentials{CardNumber: "4539148803436467"})
	require.NoError(t, err)

	assert.Equal(t, "27.50", order.Total.String())
	assert.Len(t, order.Lines, 2)

	method, err := env.store.GetPaymentMethod(ctx, 1000, "Card")
	require.NoError(t, err)
	assert.Equal(t, "222.50", method.Balance.String())
}

func TestScenario_OrderHistoryPerCustomer(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	food, err := env.catalog.GetFood(ctx, 2000)
	require.NoError(t, err)

	_, err = env.orders.CreateOrder(ctx, 1000,
		[]*domain.OrderLine{makeLine(t, food, 1)},
		"TNG", domain.PaymentCredentials{})
	require.NoError(t, err)

	mine, err := env.orders.ListOrdersByCustomer(ctx, 1000)
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	other, err := env.orders.ListOrdersByCustomer(ctx, 9999)
	require.NoError(t, err)
	assert.Empty(t, other)
}

// assertStoreUntouched checks a rejected order changed nothing: no order
// saved and the seeded TNG balance intact.
func assertStoreUntouched(t *testing.T, env *testEnv) {
	t.Helper()
	ctx := context.Background()

	orders, err := env.orders.ListOrders(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	method, err := env.store.GetPaymentMethod(ctx, 1000, "TNG")
	require.NoError(t, err)
	assert.Equal(t, "100.00", method.Balance.String())
}
