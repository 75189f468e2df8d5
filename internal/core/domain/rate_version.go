package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExchangeRateVersion is an immutable snapshot of exchange rates anchored to a
// base currency. Each rate is "units of that currency per 1 unit of the base";
// the base currency itself maps to 1.0. Only the Active flag is mutable, and
// only through the repository's SetActiveVersion operation, which guarantees
// that at most one version is active at any observable moment.
type ExchangeRateVersion struct {
	ID           string                       `json:"id"`
	VersionName  string                       `json:"versionName"`
	BaseCurrency Currency                     `json:"baseCurrency"`
	Rates        map[Currency]decimal.Decimal `json:"rates"`
	UploadedAt   time.Time                    `json:"uploadedAt"`
	UploadedBy   string                       `json:"uploadedBy"`
	Active       bool                         `json:"active"`
}

// NewExchangeRateVersion constructs a fresh, inactive version with a unique id.
// The caller is responsible for having validated the rate table (known
// currencies, positive rates, base rate ~1.0); the entity stores it as given.
func NewExchangeRateVersion(versionName string, baseCurrency Currency, rates map[Currency]decimal.Decimal, uploadedBy string) ExchangeRateVersion {
	copied := make(map[Currency]decimal.Decimal, len(rates))
	for c, r := range rates {
		copied[c] = r
	}
	return ExchangeRateVersion{
		ID:           uuid.NewString(),
		VersionName:  versionName,
		BaseCurrency: baseCurrency,
		Rates:        copied,
		UploadedAt:   time.Now().UTC(),
		UploadedBy:   uploadedBy,
		Active:       false,
	}
}

// Rate returns the base-relative rate for the given currency.
func (v *ExchangeRateVersion) Rate(currency Currency) (decimal.Decimal, bool) {
	rate, ok := v.Rates[currency]
	return rate, ok
}
