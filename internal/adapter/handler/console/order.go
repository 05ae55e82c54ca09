package console

import (
	"context"
	"strings"

	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
	"github.com/wzlim/foodcourt/internal/core/utils"
	"go.uber.org/zap"
)

type OrderHandler struct {
	*Handler
	orders  port.OrderService
	catalog port.CatalogService
}

func NewOrderHandler(base *Handler, orders port.OrderService, catalog port.CatalogService) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: base,
		orders:  orders,
		catalog: catalog,
	}, nil
}

// PlaceOrder runs the interactive order flow: pick foods, review the
// summary, choose a payment method and submit.
func (oh *OrderHandler) PlaceOrder(ctx context.Context) error {
	customerID, err := oh.promptUint("Customer id")
	if err != nil {
		return err
	}

	lines, err := oh.collectLines(ctx)
	if err != nil {
		return err
	}
	if len(lines) == 0 {
		oh.println("No items selected, order cancelled.")
		return nil
	}

	oh.printSummary(lines)
	oh.printf("%45s RM %8.2f\n", "Estimated total:", oh.orders.EstimateTotal(lines))

	paymentType, err := oh.promptString("Payment type (e.g. TNG, Card)")
	if err != nil {
		return err
	}

	creds, err := oh.collectCredentials(paymentType)
	if err != nil {
		return err
	}

	order, err := oh.orders.CreateOrder(ctx, customerID, lines, paymentType, creds)
	if err != nil {
		oh.println("Order failed:", err.Error())
		return nil
	}

	oh.printf("Order #%d completed, total RM %s, paid via %s.\n",
		order.ID, order.Total.String(), order.Payment.Type)
	return nil
}

func (oh *OrderHandler) collectLines(ctx context.Context) ([]*domain.OrderLine, error) {
	foods, err := oh.catalog.ListFoods(ctx)
	if err != nil {
		return nil, err
	}
	if len(foods) == 0 {
		oh.println("The menu is empty.")
		return nil, nil
	}

	var lines []*domain.OrderLine
	for {
		oh.printMenu(foods)

		choice, err := oh.promptInt("Menu item number")
		if err != nil {
			return nil, err
		}
		if choice < 1 || choice > len(foods) {
			oh.println("No such menu item.")
			continue
		}
		food := foods[choice-1]

		quantity, err := oh.promptInt("Quantity (1-100)")
		if err != nil {
			return nil, err
		}

		line, err := buildLine(food, quantity)
		if err != nil {
			oh.println("Cannot add item:", err.Error())
			continue
		}
		lines = append(lines, line)

		more, err := oh.promptString("Add another item? (y/n)")
		if err != nil {
			return nil, err
		}
		if !strings.EqualFold(more, "y") {
			return lines, nil
		}
	}
}

// buildLine fills the unit price from the catalog and precomputes the
// rounded subtotal the service will verify.
func buildLine(food *domain.Food, quantity int) (*domain.OrderLine, error) {
	unit := food.Price
	raw, err := utils.MulQuantity(unit, quantity)
	if err != nil {
		return nil, err
	}
	subtotal, err := utils.RoundMoney(raw)
	if err != nil {
		return nil, err
	}

	return &domain.OrderLine{
		Food:      food,
		Quantity:  quantity,
		UnitPrice: &unit,
		Subtotal:  &subtotal,
	}, nil
}

func (oh *OrderHandler) collectCredentials(paymentType string) (domain.PaymentCredentials, error) {
	if !strings.EqualFold(paymentType, "card") {
		return domain.PaymentCredentials{}, nil
	}

	for {
		number, err := oh.promptString("Card number")
		if err != nil {
			return domain.PaymentCredentials{}, err
		}
		if err := utils.ValidateLuhn(number); err != nil {
			oh.println("That card number does not look valid, try again.")
			continue
		}
		expiry, err := oh.promptString("Expiry (MM/YY)")
		if err != nil {
			return domain.PaymentCredentials{}, err
		}
		return domain.PaymentCredentials{CardNumber: number, Expiry: expiry}, nil
	}
}

func (oh *OrderHandler) printMenu(foods []*domain.Food) {
	oh.println("============================ Order Menu ============================")
	for i, food := range foods {
		oh.printf("%3d. %-30s RM %8s\n", i+1, food.Name, food.Price.String())
	}
	oh.println("  0. Exit Order")
	oh.println("====================================================================")
}

func (oh *OrderHandler) printSummary(lines []*domain.OrderLine) {
	oh.println("==================== Order Summary ====================")
	oh.printf("%-6s %-25s %8s %5s %10s\n", "ID", "Name", "Unit", "Qty", "Subtotal")
	for _, line := range lines {
		if line == nil || line.Food == nil {
			continue
		}
		unit, subtotal := "-", "-"
		if line.UnitPrice != nil {
			unit = line.UnitPrice.String()
		}
		if line.Subtotal != nil {
			subtotal = line.Subtotal.String()
		}
		oh.printf("%6d %-25s %8s %5d %10s\n",
			line.Food.ID, line.Food.Name, unit, line.Quantity, subtotal)
	}
	oh.println("-------------------------------------------------------")
}

// OrderHistory lists persisted orders, optionally filtered by customer.
func (oh *OrderHandler) OrderHistory(ctx context.Context) error {
	customerID, err := oh.promptOptionalString("Customer id filter")
	if err != nil {
		return err
	}

	var list []*domain.Order
	if customerID == "" {
		list, err = oh.orders.ListOrders(ctx)
	} else {
		var id uint64
		id, err = parseUint(customerID)
		if err != nil {
			oh.println("Not a valid customer id.")
			return nil
		}
		list, err = oh.orders.ListOrdersByCustomer(ctx, id)
	}
	if err != nil {
		oh.logger.Error("List orders", zap.Error(err))
		oh.println("Could not load orders:", err.Error())
		return nil
	}

	if len(list) == 0 {
		oh.println("No orders found.")
		return nil
	}

	oh.printf("%-6s %-20s %-8s %10s %-10s\n", "ID", "Customer", "Method", "Total", "Status")
	for _, o := range list {
		name := "-"
		if o.Customer != nil {
			name = o.Customer.Name
		}
		method := "-"
		if o.Payment != nil {
			method = o.Payment.Type
		}
		oh.printf("%-6d %-20s %-8s %10s %-10s\n", o.ID, name, method, o.Total.String(), o.Status)
	}
	return nil
}
