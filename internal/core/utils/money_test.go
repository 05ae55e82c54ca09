package utils_test

import (
	"testing"

	"github.com/govalues/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/wzlim/foodcourt/internal/core/utils"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already two decimals", "20.00", "20.00"},
		{"tie rounds away from zero", "1.005", "1.01"},
		{"tie rounds away from zero again", "2.675", "2.68"},
		{"below tie rounds down", "1.004", "1.00"},
		{"above tie rounds up", "1.0051", "1.01"},
		{"long scale below tie", "1.00499999", "1.00"},
		{"negative tie rounds away from zero", "-1.005", "-1.01"},
		{"negative below tie", "-1.004", "-1.00"},
		{"whole number", "7", "7.00"},
		{"zero", "0", "0.00"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := utils.RoundMoney(decimal.MustParse(test.input))
			assert.NoError(t, err)
			assert.Equal(t, 0, got.Cmp(decimal.MustParse(test.want)),
				"got %s, want %s", got, test.want)
		})
	}
}

func TestMulQuantity(t *testing.T) {
	got, err := utils.MulQuantity(decimal.MustParse("1.80"), 3)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(decimal.MustParse("5.40")))

	got, err = utils.MulQuantity(decimal.MustParse("10.00"), 100)
	assert.NoError(t, err)
	assert.Equal(t, 0, got.Cmp(decimal.MustParse("1000.00")))
}

func TestRoundMoneyIsDeterministic(t *testing.T) {
	unit := decimal.MustParse("3.33")
	for i := 0; i < 5; i++ {
		raw, err := utils.MulQuantity(unit, 3)
		assert.NoError(t, err)
		got, err := utils.RoundMoney(raw)
		assert.NoError(t, err)
		assert.Equal(t, "9.99", got.String())
	}
}
