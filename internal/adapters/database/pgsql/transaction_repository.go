package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portsrepo "github.com/pingufin/fxdesk/internal/core/ports/repositories"
)

// PgxTransactionRepository implements the transaction store using pgxpool.
// Revert metadata is stored in first-class columns so a reverted transaction
// stays terminal across reloads.
type PgxTransactionRepository struct {
	BaseRepository
}

// NewPgxTransactionRepository creates a new PgxTransactionRepository.
func NewPgxTransactionRepository(db *pgxpool.Pool) *PgxTransactionRepository {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: db}}
}

const transactionColumns = `transaction_id, consultant_id, customer_id,
	source_amount, source_currency, target_amount, target_currency,
	exchange_rate, exchange_rate_version_id, execution_date,
	created_at, created_by, status, revert_reason, reverted_at, reverted_by`

// SaveTransaction inserts or updates a transaction by id, including any revert metadata.
func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	var revertReason, revertedBy *string
	if txn.RevertReason != "" {
		revertReason = &txn.RevertReason
	}
	if txn.RevertedBy != "" {
		revertedBy = &txn.RevertedBy
	}

	_, err := r.Pool.Exec(ctx, `
		INSERT INTO transactions (`+transactionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		ON CONFLICT (transaction_id) DO UPDATE SET
			status = EXCLUDED.status,
			revert_reason = EXCLUDED.revert_reason,
			reverted_at = EXCLUDED.reverted_at,
			reverted_by = EXCLUDED.reverted_by`,
		txn.ID, txn.ConsultantID, txn.CustomerID,
		txn.SourceAmount.Amount, txn.SourceAmount.Currency.Code(),
		txn.TargetAmount.Amount, txn.TargetAmount.Currency.Code(),
		txn.ExchangeRate, txn.ExchangeRateVersionID, txn.ExecutionDate,
		txn.CreatedAt, txn.CreatedBy, string(txn.Status),
		revertReason, txn.RevertedAt, revertedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction by id.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE transaction_id = $1`,
		transactionID,
	)
	return scanTransaction(row)
}

// ListTransactions retrieves all transactions, newest creation first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions ORDER BY created_at DESC`)
}

// ListTransactionsByConsultant retrieves the transactions recorded by one consultant.
func (r *PgxTransactionRepository) ListTransactionsByConsultant(ctx context.Context, consultantID string) ([]domain.Transaction, error) {
	return r.queryTransactions(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE consultant_id = $1 ORDER BY created_at DESC`,
		consultantID)
}

// DeleteTransaction removes a transaction by id.
func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", apperrors.ErrNotFound, transactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) queryTransactions(ctx context.Context, sql string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *txn)
	}
	return transactions, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn            domain.Transaction
		sourceCurrency string
		targetCurrency string
		status         string
		revertReason   *string
		revertedAt     *time.Time
		revertedBy     *string
	)
	err := row.Scan(&txn.ID, &txn.ConsultantID, &txn.CustomerID,
		&txn.SourceAmount.Amount, &sourceCurrency,
		&txn.TargetAmount.Amount, &targetCurrency,
		&txn.ExchangeRate, &txn.ExchangeRateVersionID, &txn.ExecutionDate,
		&txn.CreatedAt, &txn.CreatedBy, &status,
		&revertReason, &revertedAt, &revertedBy,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: transaction", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan transaction: %w", err)
	}

	txn.SourceAmount.Currency = domain.Currency(sourceCurrency)
	txn.TargetAmount.Currency = domain.Currency(targetCurrency)
	txn.Status = domain.TransactionStatus(status)
	if revertReason != nil {
		txn.RevertReason = *revertReason
	}
	txn.RevertedAt = revertedAt
	if revertedBy != nil {
		txn.RevertedBy = *revertedBy
	}
	return &txn, nil
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)
