package console

import (
	"context"

	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
)

type CustomerHandler struct {
	*Handler
	customers port.CustomerService
}

func NewCustomerHandler(base *Handler, customers port.CustomerService) (*CustomerHandler, error) {
	return &CustomerHandler{
		Handler:   base,
		customers: customers,
	}, nil
}

func (ch *CustomerHandler) ListCustomers(ctx context.Context) error {
	list, err := ch.customers.ListCustomers(ctx)
	if err != nil {
		ch.println("Could not load customers:", err.Error())
		return nil
	}
	if len(list) == 0 {
		ch.println("No customers registered.")
		return nil
	}

	ch.printf("%-6s %-20s %4s %-12s %-6s\n", "ID", "Name", "Age", "Phone", "Gender")
	for _, c := range list {
		ch.printf("%-6d %-20s %4d %-12s %-6s\n", c.ID, c.Name, c.Age, c.Phone, c.Gender)
	}
	return nil
}

func (ch *CustomerHandler) RegisterCustomer(ctx context.Context) error {
	name, err := ch.promptString("Name")
	if err != nil {
		return err
	}
	age, err := ch.promptInt("Age")
	if err != nil {
		return err
	}
	phone, err := ch.promptString("Phone")
	if err != nil {
		return err
	}
	gender, err := ch.promptString("Gender (M/F)")
	if err != nil {
		return err
	}

	customer, err := ch.customers.RegisterCustomer(ctx, &domain.Customer{
		Name:   name,
		Age:    age,
		Phone:  phone,
		Gender: gender,
	})
	if err != nil {
		ch.println("Could not register customer:", err.Error())
		return nil
	}

	ch.printf("Registered customer #%d %s.\n", customer.ID, customer.Name)
	return nil
}

func (ch *CustomerHandler) AddPaymentMethod(ctx context.Context) error {
	customerID, err := ch.promptUint("Customer id")
	if err != nil {
		return err
	}
	methodType, err := ch.promptString("Method type (e.g. TNG, Card)")
	if err != nil {
		return err
	}
	balance, err := ch.promptDecimal("Opening balance (RM)")
	if err != nil {
		return err
	}

	method, err := ch.customers.AddPaymentMethod(ctx, &domain.PaymentMethod{
		CustomerID: customerID,
		Type:       methodType,
		Balance:    balance,
	})
	if err != nil {
		ch.println("Could not add payment method:", err.Error())
		return nil
	}

	ch.printf("Added %s method #%d for customer %d.\n", method.Type, method.ID, method.CustomerID)
	return nil
}

func (ch *CustomerHandler) TopUpBalance(ctx context.Context) error {
	customerID, err := ch.promptUint("Customer id")
	if err != nil {
		return err
	}
	methodType, err := ch.promptString("Method type")
	if err != nil {
		return err
	}
	amount, err := ch.promptDecimal("Top-up amount (RM)")
	if err != nil {
		return err
	}

	method, err := ch.customers.TopUpBalance(ctx, customerID, methodType, amount)
	if err != nil {
		ch.println("Could not top up:", err.Error())
		return nil
	}

	ch.printf("New %s balance: RM %s.\n", method.Type, method.Balance.String())
	return nil
}
