package utils

import (
	"github.com/govalues/decimal"
)

// halfCent is the tie-breaking increment for rounding to 2 decimal places.
var halfCent = decimal.MustParse("0.005")

// RoundMoney rounds d to 2 decimal places with ties going away from zero.
// decimal.Decimal.Round uses banker's rounding, which is the wrong rule for
// order totals here, so the shift-and-truncate form is used instead.
func RoundMoney(d decimal.Decimal) (decimal.Decimal, error) {
	var shifted decimal.Decimal
	var err error
	if d.IsNeg() {
		shifted, err = d.Sub(halfCent)
	} else {
		shifted, err = d.Add(halfCent)
	}
	if err != nil {
		return decimal.Decimal{}, err
	}
	return shifted.Trunc(2), nil
}

// MulQuantity multiplies a unit price by an integer quantity without leaving
// decimal arithmetic.
func MulQuantity(unit decimal.Decimal, quantity int) (decimal.Decimal, error) {
	q, err := decimal.New(int64(quantity), 0)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return unit.Mul(q)
}
