// Package memory is the ledger store: map-backed repositories for customers,
// foods, payment methods and orders. Ids are assigned by the store on insert.
// The console app is single-caller, but the store carries its own mutex so it
// stays correct if it is ever driven from more than one goroutine.
package memory

import (
	"sync"

	"github.com/wzlim/foodcourt/internal/core/domain"
)

type Store struct {
	mu sync.Mutex

	customers map[uint64]*domain.Customer
	foods     map[uint64]*domain.Food
	methods   map[uint64]*domain.PaymentMethod
	orders    map[uint64]*domain.Order

	nextCustomerID uint64
	nextFoodID     uint64
	nextMethodID   uint64
	nextOrderID    uint64
}

func NewStore() *Store {
	return &Store{
		customers:      make(map[uint64]*domain.Customer),
		foods:          make(map[uint64]*domain.Food),
		methods:        make(map[uint64]*domain.PaymentMethod),
		orders:         make(map[uint64]*domain.Order),
		nextCustomerID: 1000,
		nextFoodID:     2000,
		nextMethodID:   1,
		nextOrderID:    1,
	}
}
