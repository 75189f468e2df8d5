package services

import (
	"context"

	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/pingufin/fxdesk/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a transaction by id.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves transactions matching the filter. Consultants
	// only ever see their own transactions; administrators see all.
	ListTransactions(ctx context.Context, filter dto.TransactionFilter, actor domain.User) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines mutating operations for transactions.
type TransactionWriterSvc interface {
	// CreateTransaction converts the requested amount against the active rate
	// version and records the resulting transaction for the consultant.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, consultant domain.User) (*domain.Transaction, error)

	// UpdateTransactionStatus moves a transaction to a new non-terminal state.
	UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error)

	// RevertTransaction irreversibly reverts a transaction. Only administrators
	// may revert; the reason must be non-blank.
	RevertTransaction(ctx context.Context, transactionID, reason string, actor domain.User) (*domain.Transaction, error)
}

// TransactionSvcFacade combines all transaction service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
