package dto

import (
	"github.com/shopspring/decimal"
)

// QuoteRequest asks for a conversion of an amount between two currencies using
// the currently active exchange rate version.
type QuoteRequest struct {
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	SourceCurrency string          `json:"sourceCurrency" binding:"required,currencycode"`
	TargetCurrency string          `json:"targetCurrency" binding:"required,currencycode"`
}

// QuoteResponse carries the converted amount and the effective rate applied.
// ExchangeRate is the 6-digit rate; ExchangeRateDisplay is the same value as a
// plain float for presentation.
type QuoteResponse struct {
	SourceAmount          MoneyResponse   `json:"sourceAmount"`
	TargetAmount          MoneyResponse   `json:"targetAmount"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
	ExchangeRateDisplay   float64         `json:"exchangeRateDisplay"`
	ExchangeRateVersionID string          `json:"exchangeRateVersionID"`
}
