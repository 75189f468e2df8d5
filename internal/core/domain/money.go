package domain

import (
	"fmt"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// moneyScale is the number of fractional digits every stored amount carries.
const moneyScale = 2

// Money is an immutable monetary amount in a specific currency.
// The amount is always held rounded half-up to two fractional digits.
type Money struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency Currency        `json:"currency"`
}

// NewMoney validates and constructs a Money value. Negative amounts are
// rejected; valid amounts are rounded half-up to two fractional digits.
func NewMoney(amount decimal.Decimal, currency Currency) (Money, error) {
	if amount.IsNegative() {
		return Money{}, fmt.Errorf("%w: amount cannot be negative", apperrors.ErrValidation)
	}
	if _, ok := currencyNames[currency]; !ok {
		return Money{}, fmt.Errorf("%w: unknown currency %q", apperrors.ErrValidation, currency)
	}
	// decimal.Round rounds half away from zero, which is half-up for the
	// non-negative amounts permitted here.
	return Money{Amount: amount.Round(moneyScale), Currency: currency}, nil
}

// MustMoney is NewMoney for statically known-good inputs, e.g. tests and seeds.
func MustMoney(amount decimal.Decimal, currency Currency) Money {
	m, err := NewMoney(amount, currency)
	if err != nil {
		panic(err)
	}
	return m
}

// Convert returns this amount expressed in targetCurrency at the given rate.
// Converting to the same currency is the identity and ignores the rate.
func (m Money) Convert(targetCurrency Currency, rate decimal.Decimal) (Money, error) {
	if m.Currency == targetCurrency {
		return m, nil
	}
	return NewMoney(m.Amount.Mul(rate), targetCurrency)
}

// Equal reports value equality on (rounded amount, currency).
func (m Money) Equal(other Money) bool {
	return m.Currency == other.Currency && m.Amount.Equal(other.Amount)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.Amount.IsZero()
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Amount.StringFixed(moneyScale))
}
