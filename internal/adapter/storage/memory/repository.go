package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
)

// Customers

func (s *Store) CreateCustomer(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if customer.ID == 0 {
		customer.ID = s.nextCustomerID
		s.nextCustomerID++
	} else {
		if _, ok := s.customers[customer.ID]; ok {
			return nil, domain.ErrConflictingData
		}
		if customer.ID >= s.nextCustomerID {
			s.nextCustomerID = customer.ID + 1
		}
	}

	s.customers[customer.ID] = customer
	return customer, nil
}

func (s *Store) GetCustomer(ctx context.Context, id uint64) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, ok := s.customers[id]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return customer, nil
}

func (s *Store) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

// Foods

func (s *Store) CreateFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if food.ID == 0 {
		food.ID = s.nextFoodID
		s.nextFoodID++
	} else {
		if _, ok := s.foods[food.ID]; ok {
			return nil, domain.ErrConflictingData
		}
		if food.ID >= s.nextFoodID {
			s.nextFoodID = food.ID + 1
		}
	}

	s.foods[food.ID] = food
	return food, nil
}

func (s *Store) GetFood(ctx context.Context, id uint64) (*domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	food, ok := s.foods[id]
	if !ok {
		return nil, domain.ErrDataNotFound
	}
	return food, nil
}

func (s *Store) ListFoods(ctx context.Context) ([]*domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*domain.Food, 0, len(s.foods))
	for _, f := range s.foods {
		list = append(list, f)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Store) UpdateFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.foods[food.ID]; !ok {
		return nil, domain.ErrDataNotFound
	}
	s.foods[food.ID] = food
	return food, nil
}

func (s *Store) DeleteFood(ctx context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.foods[id]; !ok {
		return domain.ErrDataNotFound
	}
	delete(s.foods, id)
	return nil
}

// Payment methods

func (s *Store) CreatePaymentMethod(ctx context.Context, method *domain.PaymentMethod) (*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if method.ID == 0 {
		method.ID = s.nextMethodID
		s.nextMethodID++
	} else {
		if _, ok := s.methods[method.ID]; ok {
			return nil, domain.ErrConflictingData
		}
		if method.ID >= s.nextMethodID {
			s.nextMethodID = method.ID + 1
		}
	}

	s.methods[method.ID] = method
	return method, nil
}

func (s *Store) GetPaymentMethod(ctx context.Context, customerID uint64, methodType string) (*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.findMethodLocked(customerID, methodType)
}

func (s *Store) findMethodLocked(customerID uint64, methodType string) (*domain.PaymentMethod, error) {
	for _, m := range s.methods {
		if m.CustomerID == customerID && strings.EqualFold(m.Type, methodType) {
			return m, nil
		}
	}
	return nil, domain.ErrDataNotFound
}

// UpdateBalance applies updateFn to the stored method under the store lock.
// If updateFn returns an error the stored method is left unchanged.
func (s *Store) UpdateBalance(ctx context.Context, methodID uint64, updateFn port.UpdateBalanceFn) (*domain.PaymentMethod, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	method, ok := s.methods[methodID]
	if !ok {
		return nil, domain.ErrDataNotFound
	}

	updated := *method
	if err := updateFn(&updated); err != nil {
		return nil, err
	}

	s.methods[methodID] = &updated
	return &updated, nil
}

// Orders

func (s *Store) SaveOrder(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextOrderID
	s.nextOrderID++

	s.orders[order.ID] = order
	return order, nil
}

func (s *Store) ListOrders(ctx context.Context) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		list = append(list, o)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (s *Store) ListOrdersByCustomer(ctx context.Context, customerID uint64) ([]*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]*domain.Order, 0)
	for _, o := range s.orders {
		if o.Customer != nil && o.Customer.ID == customerID {
			list = append(list, o)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}
