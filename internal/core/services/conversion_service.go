package services

import (
	"fmt"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// rateScale is the precision of effective exchange rates. It is independent of
// the 2-digit rounding applied afterwards to the resulting Money amount.
const rateScale = 6

// ConversionService implements the cross-rate conversion algorithm over a
// base-currency-anchored rate table. It is stateless and side-effect-free.
type ConversionService struct{}

// NewConversionService creates a new ConversionService.
func NewConversionService() *ConversionService {
	return &ConversionService{}
}

// CalculateRate computes the effective rate from source to target under the
// given version. Rates in the table are "units of currency per 1 unit of the
// base currency", so a cross rate between two non-base currencies is the
// quotient of their base-relative rates.
func (s *ConversionService) CalculateRate(source, target domain.Currency, version *domain.ExchangeRateVersion) (decimal.Decimal, error) {
	if source == target {
		return decimal.NewFromInt(1), nil
	}

	base := version.BaseCurrency

	if source == base {
		rate, ok := version.Rate(target)
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%w: exchange rate not found for %s", apperrors.ErrNotFound, target)
		}
		return rate.Round(rateScale), nil
	}

	if target == base {
		rate, ok := version.Rate(source)
		if !ok {
			return decimal.Decimal{}, fmt.Errorf("%w: exchange rate not found for %s", apperrors.ErrNotFound, source)
		}
		return decimal.NewFromInt(1).DivRound(rate, rateScale), nil
	}

	sourceRate, sourceOK := version.Rate(source)
	targetRate, targetOK := version.Rate(target)
	if !sourceOK && !targetOK {
		return decimal.Decimal{}, fmt.Errorf("%w: exchange rates not found for %s and %s", apperrors.ErrNotFound, source, target)
	}
	if !sourceOK {
		return decimal.Decimal{}, fmt.Errorf("%w: exchange rate not found for %s", apperrors.ErrNotFound, source)
	}
	if !targetOK {
		return decimal.Decimal{}, fmt.Errorf("%w: exchange rate not found for %s", apperrors.ErrNotFound, target)
	}

	return targetRate.DivRound(sourceRate, rateScale), nil
}

// Convert converts money into the target currency under the given version and
// returns the converted amount together with the effective rate applied.
// Converting into the money's own currency is the identity with rate 1.
func (s *ConversionService) Convert(money domain.Money, target domain.Currency, version *domain.ExchangeRateVersion) (domain.Money, decimal.Decimal, error) {
	if money.Currency == target {
		return money, decimal.NewFromInt(1), nil
	}

	rate, err := s.CalculateRate(money.Currency, target, version)
	if err != nil {
		return domain.Money{}, decimal.Decimal{}, err
	}

	converted, err := money.Convert(target, rate)
	if err != nil {
		return domain.Money{}, decimal.Decimal{}, err
	}
	return converted, rate, nil
}

// ExchangeRateAsFloat exposes the effective rate as a plain float for display.
func (s *ConversionService) ExchangeRateAsFloat(source, target domain.Currency, version *domain.ExchangeRateVersion) (float64, error) {
	rate, err := s.CalculateRate(source, target, version)
	if err != nil {
		return 0, err
	}
	return rate.InexactFloat64(), nil
}

var _ portssvc.ConversionSvcFacade = (*ConversionService)(nil)
