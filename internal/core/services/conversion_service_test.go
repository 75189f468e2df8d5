package services_test

import (
	"testing"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/pingufin/fxdesk/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chfRateVersion mirrors the canonical rate table used across the service
// tests: CHF base with EUR at 1.05 and USD at 1.15.
func chfRateVersion() *domain.ExchangeRateVersion {
	version := domain.NewExchangeRateVersion("2026-Q1", domain.CHF, map[domain.Currency]decimal.Decimal{
		domain.CHF: decimal.NewFromInt(1),
		domain.EUR: decimal.NewFromFloat(1.05),
		domain.USD: decimal.NewFromFloat(1.15),
	}, "admin")
	return &version
}

func TestCalculateRate(t *testing.T) {
	svc := services.NewConversionService()
	version := chfRateVersion()

	tests := []struct {
		name   string
		source domain.Currency
		target domain.Currency
		want   string
	}{
		{name: "identity", source: domain.EUR, target: domain.EUR, want: "1"},
		{name: "base to quoted", source: domain.CHF, target: domain.USD, want: "1.15"},
		{name: "quoted to base", source: domain.USD, target: domain.CHF, want: "0.869565"},
		{name: "cross rate", source: domain.EUR, target: domain.USD, want: "1.095238"},
		{name: "cross rate reversed", source: domain.USD, target: domain.EUR, want: "0.913043"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := svc.CalculateRate(tt.source, tt.target, version)
			require.NoError(t, err)
			want, err := decimal.NewFromString(tt.want)
			require.NoError(t, err)
			assert.True(t, rate.Equal(want), "got %s, want %s", rate, want)
		})
	}
}

func TestCalculateRate_MissingRates(t *testing.T) {
	svc := services.NewConversionService()
	version := chfRateVersion()

	t.Run("missing target", func(t *testing.T) {
		_, err := svc.CalculateRate(domain.EUR, domain.GBP, version)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "GBP")
	})

	t.Run("missing source", func(t *testing.T) {
		_, err := svc.CalculateRate(domain.JPY, domain.USD, version)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "JPY")
	})

	t.Run("both missing", func(t *testing.T) {
		_, err := svc.CalculateRate(domain.JPY, domain.GBP, version)
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.Contains(t, err.Error(), "JPY")
		assert.Contains(t, err.Error(), "GBP")
	})
}

func TestConvert(t *testing.T) {
	svc := services.NewConversionService()
	version := chfRateVersion()

	t.Run("cross conversion", func(t *testing.T) {
		money := domain.MustMoney(decimal.NewFromInt(100), domain.EUR)

		converted, rate, err := svc.Convert(money, domain.USD, version)

		require.NoError(t, err)
		assert.Equal(t, "1.095238", rate.String())
		assert.Equal(t, domain.USD, converted.Currency)
		assert.Equal(t, "109.52", converted.Amount.StringFixed(2))
	})

	t.Run("to base currency", func(t *testing.T) {
		money := domain.MustMoney(decimal.NewFromInt(100), domain.USD)

		converted, rate, err := svc.Convert(money, domain.CHF, version)

		require.NoError(t, err)
		assert.Equal(t, "0.869565", rate.String())
		assert.Equal(t, "86.96", converted.Amount.StringFixed(2))
	})

	t.Run("identity ignores rate table", func(t *testing.T) {
		money := domain.MustMoney(decimal.NewFromFloat(42.42), domain.GBP)

		converted, rate, err := svc.Convert(money, domain.GBP, version)

		require.NoError(t, err)
		assert.True(t, rate.Equal(decimal.NewFromInt(1)))
		assert.True(t, converted.Equal(money))
	})

	t.Run("missing rate propagates", func(t *testing.T) {
		money := domain.MustMoney(decimal.NewFromInt(100), domain.EUR)

		_, _, err := svc.Convert(money, domain.SEK, version)

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestExchangeRateAsFloat(t *testing.T) {
	svc := services.NewConversionService()
	version := chfRateVersion()

	got, err := svc.ExchangeRateAsFloat(domain.EUR, domain.USD, version)

	require.NoError(t, err)
	assert.InDelta(t, 1.095238, got, 1e-9)
}
