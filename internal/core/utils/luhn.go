package utils

import (
	"errors"
	"strconv"
)

var ErrLuhnCheckFail = errors.New("luhn check failed")

// ValidateLuhn checks a card number with the Luhn algorithm.
func ValidateLuhn(number string) error {
	if number == "" {
		return ErrLuhnCheckFail
	}

	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		digit, err := strconv.Atoi(string(number[i]))
		if err != nil {
			return ErrLuhnCheckFail
		}
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	if sum%10 != 0 {
		return ErrLuhnCheckFail
	}
	return nil
}
