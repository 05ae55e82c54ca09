package memory_test

import (
	"context"
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wzlim/foodcourt/internal/adapter/storage/memory"
	"github.com/wzlim/foodcourt/internal/core/domain"
)

func TestStore_IDAssignment(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	first, err := store.CreateCustomer(ctx, &domain.Customer{Name: "John"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1000), first.ID)

	second, err := store.CreateCustomer(ctx, &domain.Customer{Name: "Mary"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1001), second.ID)

	food, err := store.CreateFood(ctx, &domain.Food{Name: "Roti Canai", Price: decimal.MustParse("1.80")})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2000), food.ID)
}

func TestStore_ExplicitIDs(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	preset, err := store.CreateCustomer(ctx, &domain.Customer{ID: 1500, Name: "John"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1500), preset.ID)

	// The counter moves past explicit ids.
	next, err := store.CreateCustomer(ctx, &domain.Customer{Name: "Mary"})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1501), next.ID)

	_, err = store.CreateCustomer(ctx, &domain.Customer{ID: 1500, Name: "Dup"})
	assert.ErrorIs(t, err, domain.ErrConflictingData)
}

func TestStore_GetPaymentMethodCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.CreatePaymentMethod(ctx, &domain.PaymentMethod{
		CustomerID: 1000,
		Type:       "TNG",
		Balance:    decimal.MustParse("100.00"),
	})
	assert.NoError(t, err)

	for _, typ := range []string{"TNG", "tng", "Tng"} {
		method, err := store.GetPaymentMethod(ctx, 1000, typ)
		assert.NoError(t, err)
		assert.Equal(t, "TNG", method.Type)
	}

	_, err = store.GetPaymentMethod(ctx, 1000, "Card")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)

	_, err = store.GetPaymentMethod(ctx, 9999, "TNG")
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestStore_UpdateBalance(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	method, err := store.CreatePaymentMethod(ctx, &domain.PaymentMethod{
		CustomerID: 1000,
		Type:       "TNG",
		Balance:    decimal.MustParse("100.00"),
	})
	assert.NoError(t, err)

	updated, err := store.UpdateBalance(ctx, method.ID, func(m *domain.PaymentMethod) error {
		newBalance, err := m.Balance.Sub(decimal.MustParse("20.00"))
		if err != nil {
			return err
		}
		m.Balance = newBalance
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, "80.00", updated.Balance.String())

	// A failing update leaves the stored method untouched.
	_, err = store.UpdateBalance(ctx, method.ID, func(m *domain.PaymentMethod) error {
		m.Balance = decimal.Zero
		return domain.ErrInsufficientBalance
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

	current, err := store.GetPaymentMethod(ctx, 1000, "TNG")
	assert.NoError(t, err)
	assert.Equal(t, "80.00", current.Balance.String())

	_, err = store.UpdateBalance(ctx, 9999, func(m *domain.PaymentMethod) error { return nil })
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestStore_Orders(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	john := &domain.Customer{ID: 1000, Name: "John"}
	mary := &domain.Customer{ID: 1001, Name: "Mary"}

	first, err := store.SaveOrder(ctx, &domain.Order{Customer: john, Total: decimal.MustParse("20.00")})
	assert.NoError(t, err)
	assert.Equal(t, uint64(1), first.ID)

	second, err := store.SaveOrder(ctx, &domain.Order{Customer: mary, Total: decimal.MustParse("8.50")})
	assert.NoError(t, err)
	assert.Equal(t, uint64(2), second.ID)

	all, err := store.ListOrders(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	assert.Equal(t, uint64(1), all[0].ID)

	johns, err := store.ListOrdersByCustomer(ctx, 1000)
	assert.NoError(t, err)
	assert.Len(t, johns, 1)
	assert.Equal(t, first, johns[0])

	none, err := store.ListOrdersByCustomer(ctx, 9999)
	assert.NoError(t, err)
	assert.Empty(t, none)
}

func TestStore_FoodCRUD(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	food, err := store.CreateFood(ctx, &domain.Food{Name: "Mee Goreng", Price: decimal.MustParse("7.20"), Category: "A la carte"})
	assert.NoError(t, err)

	food.Price = decimal.MustParse("7.50")
	updated, err := store.UpdateFood(ctx, food)
	assert.NoError(t, err)
	assert.Equal(t, "7.50", updated.Price.String())

	list, err := store.ListFoods(ctx)
	assert.NoError(t, err)
	assert.Len(t, list, 1)

	assert.NoError(t, store.DeleteFood(ctx, food.ID))
	assert.ErrorIs(t, store.DeleteFood(ctx, food.ID), domain.ErrDataNotFound)

	_, err = store.GetFood(ctx, food.ID)
	assert.ErrorIs(t, err, domain.ErrDataNotFound)
}

func TestStore_Seed(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	assert.NoError(t, store.Seed(ctx))

	foods, err := store.ListFoods(ctx)
	assert.NoError(t, err)
	assert.NotEmpty(t, foods)

	customers, err := store.ListCustomers(ctx)
	assert.NoError(t, err)
	assert.Len(t, customers, 1)

	method, err := store.GetPaymentMethod(ctx, customers[0].ID, "tng")
	assert.NoError(t, err)
	assert.Equal(t, "100.00", method.Balance.String())
}
