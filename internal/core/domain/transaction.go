package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a conversion transaction.
type TransactionStatus string

const (
	StatusNotStarted TransactionStatus = "NOT_STARTED"
	StatusExecuted   TransactionStatus = "EXECUTED"
	StatusCompleted  TransactionStatus = "COMPLETED"
	StatusCancelled  TransactionStatus = "CANCELLED"
	StatusReverted   TransactionStatus = "REVERTED"
)

// ParseTransactionStatus resolves a status from its wire representation.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusNotStarted:
		return StatusNotStarted, nil
	case StatusExecuted:
		return StatusExecuted, nil
	case StatusCompleted:
		return StatusCompleted, nil
	case StatusCancelled:
		return StatusCancelled, nil
	case StatusReverted:
		return StatusReverted, nil
	default:
		return "", fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrValidation, s)
	}
}

// Transaction is one currency-exchange event recorded by a consultant for a
// customer. Status moves freely among the four non-terminal states; REVERTED
// is terminal and exclusive, reachable from any other state exactly once.
type Transaction struct {
	ID                    string            `json:"id"`
	ConsultantID          string            `json:"consultantID"`
	CustomerID            string            `json:"customerID"`
	SourceAmount          Money             `json:"sourceAmount"`
	TargetAmount          Money             `json:"targetAmount"`
	ExchangeRate          decimal.Decimal   `json:"exchangeRate"`
	ExchangeRateVersionID string            `json:"exchangeRateVersionID"`
	ExecutionDate         time.Time         `json:"executionDate"`
	CreatedAt             time.Time         `json:"createdAt"`
	CreatedBy             string            `json:"createdBy"`
	Status                TransactionStatus `json:"status"`
	RevertReason          string            `json:"revertReason,omitempty"`
	RevertedAt            *time.Time        `json:"revertedAt,omitempty"`
	RevertedBy            string            `json:"revertedBy,omitempty"`
}

// NewTransaction constructs a transaction in the NOT_STARTED state with a
// fresh unique id.
func NewTransaction(consultantID, customerID string, sourceAmount, targetAmount Money,
	exchangeRate decimal.Decimal, exchangeRateVersionID string,
	executionDate time.Time, createdBy string) Transaction {
	return Transaction{
		ID:                    uuid.NewString(),
		ConsultantID:          consultantID,
		CustomerID:            customerID,
		SourceAmount:          sourceAmount,
		TargetAmount:          targetAmount,
		ExchangeRate:          exchangeRate,
		ExchangeRateVersionID: exchangeRateVersionID,
		ExecutionDate:         executionDate,
		CreatedAt:             time.Now().UTC(),
		CreatedBy:             createdBy,
		Status:                StatusNotStarted,
	}
}

// UpdateStatus overwrites the status. There is no enforced ordering between
// the non-terminal states, but a reverted transaction can never change again.
func (t *Transaction) UpdateStatus(newStatus TransactionStatus) error {
	if t.Status == StatusReverted {
		return fmt.Errorf("%w: cannot change status of a reverted transaction", apperrors.ErrInvalidState)
	}
	t.Status = newStatus
	return nil
}

// Revert moves the transaction into its terminal REVERTED state, recording the
// reason and the administrator who performed it. Reversal is legal from any
// non-reverted state, including NOT_STARTED and CANCELLED, but never twice.
func (t *Transaction) Revert(reason, revertedBy string) error {
	if t.Status == StatusReverted {
		return fmt.Errorf("%w: transaction already reverted", apperrors.ErrInvalidState)
	}
	now := time.Now().UTC()
	t.Status = StatusReverted
	t.RevertReason = reason
	t.RevertedAt = &now
	t.RevertedBy = revertedBy
	return nil
}

// IsReverted reports whether the transaction has reached its terminal state.
func (t *Transaction) IsReverted() bool {
	return t.Status == StatusReverted
}
