// Package money converts between rupee amounts carried in requests and the
// paise amounts stored in the ledger.
package money

import (
	"fmt"

	"github.com/Bhishaj9/redbull-backend/internal/api"

	"github.com/shopspring/decimal"
)

const paisePerRupee = 100

var hundred = decimal.NewFromInt(paisePerRupee)

// ToPaise converts a rupee amount to paise. Fractions of a paisa are rejected.
func ToPaise(rupees decimal.Decimal) (int64, error) {
	paise := rupees.Mul(hundred)
	if !paise.Equal(paise.Truncate(0)) {
		return 0, fmt.Errorf("amount %s has more than two decimal places: %w", rupees.String(), api.ErrValidation)
	}
	if !paise.BigInt().IsInt64() {
		return 0, fmt.Errorf("amount %s out of range: %w", rupees.String(), api.ErrValidation)
	}
	return paise.IntPart(), nil
}

// PositivePaise is ToPaise that additionally requires a strictly positive amount.
func PositivePaise(rupees decimal.Decimal) (int64, error) {
	p, err := ToPaise(rupees)
	if err != nil {
		return 0, err
	}
	if p <= 0 {
		return 0, fmt.Errorf("amount must be positive: %w", api.ErrValidation)
	}
	return p, nil
}

func Rupees(paise int64) decimal.Decimal {
	return decimal.New(paise, -2)
}

// Format renders paise as a rupee string with two decimals, e.g. "520.00".
func Format(paise int64) string {
	return Rupees(paise).StringFixed(2)
}

// Fraction returns floor(paise * rate) for rates such as the referral share.
func Fraction(paise int64, rate float64) int64 {
	return decimal.NewFromInt(paise).Mul(decimal.NewFromFloat(rate)).Floor().IntPart()
}
