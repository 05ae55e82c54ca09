package memory

import (
	"context"

	"github.com/govalues/decimal"
	"github.com/wzlim/foodcourt/internal/core/domain"
)

// Seed loads a small demo data set so the console app is usable out of the
// box: a catalog, one customer and two funded payment methods.
func (s *Store) Seed(ctx context.Context) error {
	foods := []*domain.Food{
		{Name: "Nasi Lemak Set", Price: decimal.MustParse("10.00"), Category: "Set"},
		{Name: "Chicken Rice Set", Price: decimal.MustParse("8.50"), Category: "Set"},
		{Name: "Roti Canai", Price: decimal.MustParse("1.80"), Category: "A la carte"},
		{Name: "Mee Goreng", Price: decimal.MustParse("7.20"), Category: "A la carte"},
		{Name: "Teh Tarik", Price: decimal.MustParse("2.50"), Category: "Drink"},
	}
	for _, f := range foods {
		if _, err := s.CreateFood(ctx, f); err != nil {
			return err
		}
	}

	customer := &domain.Customer{
		Name:   "John",
		Age:    25,
		Phone:  "0123456789",
		Gender: "M",
	}
	if _, err := s.CreateCustomer(ctx, customer); err != nil {
		return err
	}

	methods := []*domain.PaymentMethod{
		{CustomerID: customer.ID, Type: "TNG", Balance: decimal.MustParse("100.00")},
		{CustomerID: customer.ID, Type: "Card", Balance: decimal.MustParse("250.00")},
	}
	for _, m := range methods {
		if _, err := s.CreatePaymentMethod(ctx, m); err != nil {
			return err
		}
	}

	return nil
}
