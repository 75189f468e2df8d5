package repositories

import (
	"context"

	"github.com/pingufin/fxdesk/internal/core/domain"
)

// TransactionReader defines read operations for transactions.
type TransactionReader interface {
	// FindTransactionByID retrieves a specific transaction by its id.
	FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves all transactions, newest creation first.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ListTransactionsByConsultant retrieves the transactions recorded by one consultant.
	ListTransactionsByConsultant(ctx context.Context, consultantID string) ([]domain.Transaction, error)
}

// TransactionWriter defines write operations for transactions.
type TransactionWriter interface {
	// SaveTransaction persists a transaction (upsert by id), including any
	// revert metadata so a reverted transaction stays terminal across reloads.
	SaveTransaction(ctx context.Context, transaction domain.Transaction) error

	// DeleteTransaction removes a transaction by id.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionRepositoryFacade combines all transaction repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
