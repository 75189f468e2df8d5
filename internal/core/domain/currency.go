package domain

import (
	"fmt"
	"strings"

	"github.com/pingufin/fxdesk/internal/apperrors"
)

// Currency is a supported currency code. The set is closed: rate tables and
// transactions only ever reference the codes enumerated below.
type Currency string

const (
	CHF Currency = "CHF"
	EUR Currency = "EUR"
	USD Currency = "USD"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	CNY Currency = "CNY"
	INR Currency = "INR"
	SEK Currency = "SEK"
)

var currencyNames = map[Currency]string{
	CHF: "Swiss Franc",
	EUR: "Euro",
	USD: "US Dollar",
	GBP: "British Pound",
	JPY: "Japanese Yen",
	CAD: "Canadian Dollar",
	AUD: "Australian Dollar",
	CNY: "Chinese Yuan",
	INR: "Indian Rupee",
	SEK: "Swedish Krona",
}

// currencyOrder fixes the listing order for Currencies().
var currencyOrder = []Currency{CHF, EUR, USD, GBP, JPY, CAD, AUD, CNY, INR, SEK}

// CurrencyFromCode resolves a currency from its code, case-insensitively.
func CurrencyFromCode(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if _, ok := currencyNames[c]; !ok {
		return "", fmt.Errorf("%w: unknown currency code %q", apperrors.ErrNotFound, code)
	}
	return c, nil
}

// Currencies returns all supported currencies in a stable order.
func Currencies() []Currency {
	out := make([]Currency, len(currencyOrder))
	copy(out, currencyOrder)
	return out
}

// Code returns the ISO-style code of the currency.
func (c Currency) Code() string {
	return string(c)
}

// DisplayName returns the human-readable name of the currency.
func (c Currency) DisplayName() string {
	return currencyNames[c]
}

func (c Currency) String() string {
	return string(c)
}
