package domain

import "github.com/govalues/decimal"

type Food struct {
	ID       uint64
	Name     string
	Price    decimal.Decimal
	Category string
}
