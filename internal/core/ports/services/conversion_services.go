package services

import (
	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvcFacade is the stateless currency-conversion algorithm. The
// operations are pure computations over in-memory values and carry no context.
type ConversionSvcFacade interface {
	// CalculateRate computes the effective rate from source to target under the
	// given version: 1 for identity, the table rate when source is the base,
	// the 6-digit half-up reciprocal when target is the base, or the 6-digit
	// half-up cross rate otherwise. Missing table entries yield
	// apperrors.ErrNotFound naming the missing currency.
	CalculateRate(source, target domain.Currency, version *domain.ExchangeRateVersion) (decimal.Decimal, error)

	// Convert applies CalculateRate to a Money value; identity conversions
	// return the input unchanged.
	Convert(money domain.Money, target domain.Currency, version *domain.ExchangeRateVersion) (domain.Money, decimal.Decimal, error)

	// ExchangeRateAsFloat exposes the effective rate as a plain float for display.
	ExchangeRateAsFloat(source, target domain.Currency, version *domain.ExchangeRateVersion) (float64, error)
}
