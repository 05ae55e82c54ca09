package console

import (
	"context"
	"errors"
	"io"
)

// Menu is the top-level console loop. Screens return nil when they finished
// (successfully or with a printed business error) and ErrCancelled when the
// user backed out; both bring the enclosing menu back.
type Menu struct {
	*Handler
	orders    *OrderHandler
	foods     *FoodHandler
	customers *CustomerHandler
}

func NewMenu(base *Handler, orders *OrderHandler, foods *FoodHandler,
	customers *CustomerHandler) (*Menu, error) {
	return &Menu{
		Handler:   base,
		orders:    orders,
		foods:     foods,
		customers: customers,
	}, nil
}

func (m *Menu) Run(ctx context.Context) error {
	for {
		m.println()
		m.println("=============== Food Court ===============")
		m.println(" 1. Place order")
		m.println(" 2. Order history")
		m.println(" 3. View menu")
		m.println(" 4. Manage foods")
		m.println(" 5. Customers")
		m.println(" 0. Exit")
		m.println("==========================================")

		choice, err := m.promptInt("Choose an option")
		if err != nil {
			if errors.Is(err, ErrCancelled) || errors.Is(err, io.EOF) {
				m.println("Bye.")
				return nil
			}
			return err
		}

		switch choice {
		case 1:
			err = m.orders.PlaceOrder(ctx)
		case 2:
			err = m.orders.OrderHistory(ctx)
		case 3:
			err = m.foods.ListFoods(ctx)
		case 4:
			err = m.foodAdmin(ctx)
		case 5:
			err = m.customerAdmin(ctx)
		default:
			m.println("No such option.")
			continue
		}

		if err != nil && !errors.Is(err, ErrCancelled) {
			if errors.Is(err, io.EOF) {
				m.println("Bye.")
				return nil
			}
			return err
		}
	}
}

func (m *Menu) foodAdmin(ctx context.Context) error {
	for {
		m.println()
		m.println("--------- Food Management ---------")
		m.println(" 1. List foods")
		m.println(" 2. Add food")
		m.println(" 3. Edit food")
		m.println(" 4. Remove food")
		m.println(" 0. Back")

		choice, err := m.promptInt("Choose an option")
		if err != nil {
			// "0. Back" arrives as a cancel at this prompt.
			return err
		}

		switch choice {
		case 1:
			err = m.foods.ListFoods(ctx)
		case 2:
			err = m.foods.AddFood(ctx)
		case 3:
			err = m.foods.EditFood(ctx)
		case 4:
			err = m.foods.RemoveFood(ctx)
		default:
			m.println("No such option.")
			continue
		}
		if err != nil && !errors.Is(err, ErrCancelled) {
			return err
		}
	}
}

func (m *Menu) customerAdmin(ctx context.Context) error {
	for {
		m.println()
		m.println("--------- Customers ---------")
		m.println(" 1. List customers")
		m.println(" 2. Register customer")
		m.println(" 3. Add payment method")
		m.println(" 4. Top up balance")
		m.println(" 0. Back")

		choice, err := m.promptInt("Choose an option")
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = m.customers.ListCustomers(ctx)
		case 2:
			err = m.customers.RegisterCustomer(ctx)
		case 3:
			err = m.customers.AddPaymentMethod(ctx)
		case 4:
			err = m.customers.TopUpBalance(ctx)
		default:
			m.println("No such option.")
			continue
		}
		if err != nil && !errors.Is(err, ErrCancelled) {
			return err
		}
	}
}
