package dto

import (
	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MoneyResponse is the wire form of a monetary amount.
type MoneyResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ToMoneyResponse converts a domain.Money to its response DTO.
func ToMoneyResponse(m domain.Money) MoneyResponse {
	return MoneyResponse{
		Amount:   m.Amount,
		Currency: m.Currency.Code(),
	}
}
