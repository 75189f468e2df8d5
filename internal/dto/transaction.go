package dto

import (
	"time"

	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest records a conversion for a customer. The conversion
// itself is computed server-side against the active rate version.
type CreateTransactionRequest struct {
	CustomerID     string          `json:"customerID" binding:"required"`
	Amount         decimal.Decimal `json:"amount" binding:"required"`
	SourceCurrency string          `json:"sourceCurrency" binding:"required,currencycode"`
	TargetCurrency string          `json:"targetCurrency" binding:"required,currencycode"`
	ExecutionDate  time.Time       `json:"executionDate" binding:"required"`
}

// UpdateTransactionStatusRequest moves a transaction to a new lifecycle state.
type UpdateTransactionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// RevertTransactionRequest is the admin-only reversal payload.
type RevertTransactionRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// TransactionFilter narrows a transaction listing. Zero-valued fields are
// ignored. Date bounds are inclusive and compared on the date component only.
type TransactionFilter struct {
	ConsultantID string
	CustomerID   string
	Status       *domain.TransactionStatus
	Currency     *domain.Currency
	FromDate     *time.Time
	ToDate       *time.Time
}

// TransactionResponse is the wire form of a transaction.
type TransactionResponse struct {
	ID                    string          `json:"id"`
	ConsultantID          string          `json:"consultantID"`
	CustomerID            string          `json:"customerID"`
	SourceAmount          MoneyResponse   `json:"sourceAmount"`
	TargetAmount          MoneyResponse   `json:"targetAmount"`
	ExchangeRate          decimal.Decimal `json:"exchangeRate"`
	ExchangeRateVersionID string          `json:"exchangeRateVersionID"`
	ExecutionDate         time.Time       `json:"executionDate"`
	CreatedAt             time.Time       `json:"createdAt"`
	CreatedBy             string          `json:"createdBy"`
	Status                string          `json:"status"`
	RevertReason          string          `json:"revertReason,omitempty"`
	RevertedAt            *time.Time      `json:"revertedAt,omitempty"`
	RevertedBy            string          `json:"revertedBy,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:                    t.ID,
		ConsultantID:          t.ConsultantID,
		CustomerID:            t.CustomerID,
		SourceAmount:          ToMoneyResponse(t.SourceAmount),
		TargetAmount:          ToMoneyResponse(t.TargetAmount),
		ExchangeRate:          t.ExchangeRate,
		ExchangeRateVersionID: t.ExchangeRateVersionID,
		ExecutionDate:         t.ExecutionDate,
		CreatedAt:             t.CreatedAt,
		CreatedBy:             t.CreatedBy,
		Status:                string(t.Status),
		RevertReason:          t.RevertReason,
		RevertedAt:            t.RevertedAt,
		RevertedBy:            t.RevertedBy,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		responses[i] = ToTransactionResponse(&transactions[i])
	}
	return responses
}
