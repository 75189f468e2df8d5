package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portsrepo "github.com/pingufin/fxdesk/internal/core/ports/repositories"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/dto"
)

// TransactionService records conversion transactions and manages their
// lifecycle, including the authorization-gated reversal.
type TransactionService struct {
	txnRepo     portsrepo.TransactionRepositoryFacade
	rateService portssvc.RateVersionReaderSvc
	converter   portssvc.ConversionSvcFacade
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(txnRepo portsrepo.TransactionRepositoryFacade, rateService portssvc.RateVersionReaderSvc, converter portssvc.ConversionSvcFacade) *TransactionService {
	return &TransactionService{
		txnRepo:     txnRepo,
		rateService: rateService,
		converter:   converter,
	}
}

// CreateTransaction converts the requested amount against the active rate
// version and records the resulting transaction for the consultant.
func (s *TransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest, consultant domain.User) (*domain.Transaction, error) {
	sourceCurrency, err := domain.CurrencyFromCode(req.SourceCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown source currency %q", apperrors.ErrValidation, req.SourceCurrency)
	}
	targetCurrency, err := domain.CurrencyFromCode(req.TargetCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown target currency %q", apperrors.ErrValidation, req.TargetCurrency)
	}

	sourceAmount, err := domain.NewMoney(req.Amount, sourceCurrency)
	if err != nil {
		return nil, err
	}

	version, err := s.rateService.GetActiveRateVersion(ctx)
	if err != nil {
		return nil, err
	}

	targetAmount, rate, err := s.converter.Convert(sourceAmount, targetCurrency, version)
	if err != nil {
		return nil, err
	}

	txn := domain.NewTransaction(
		consultant.UserID,
		req.CustomerID,
		sourceAmount,
		targetAmount,
		rate,
		version.ID,
		req.ExecutionDate,
		consultant.Username,
	)

	if err := s.txnRepo.SaveTransaction(ctx, txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction: %w", err)
	}
	return &txn, nil
}

// GetTransactionByID retrieves a transaction by id.
func (s *TransactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// ListTransactions retrieves the transactions visible to the actor, narrowed
// by the filter. Consultants are always scoped to their own transactions.
func (s *TransactionService) ListTransactions(ctx context.Context, filter dto.TransactionFilter, actor domain.User) ([]domain.Transaction, error) {
	var (
		transactions []domain.Transaction
		err          error
	)
	if actor.Role == domain.RoleAdmin {
		transactions, err = s.txnRepo.ListTransactions(ctx)
	} else {
		transactions, err = s.txnRepo.ListTransactionsByConsultant(ctx, actor.UserID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	if filter.ConsultantID != "" {
		transactions = s.FilterByConsultant(transactions, filter.ConsultantID)
	}
	if filter.CustomerID != "" {
		transactions = s.FilterByCustomer(transactions, filter.CustomerID)
	}
	if filter.Status != nil {
		transactions = s.FilterByStatus(transactions, *filter.Status)
	}
	if filter.Currency != nil {
		transactions = s.FilterByCurrency(transactions, *filter.Currency)
	}
	if filter.FromDate != nil && filter.ToDate != nil {
		transactions = s.FilterByDateRange(transactions, *filter.FromDate, *filter.ToDate)
	}
	if transactions == nil {
		transactions = []domain.Transaction{}
	}
	return transactions, nil
}

// FilterByConsultant returns the transactions recorded by the given
// consultant, preserving input order. The input is never mutated.
func (s *TransactionService) FilterByConsultant(transactions []domain.Transaction, consultantID string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.ConsultantID == consultantID {
			out = append(out, t)
		}
	}
	return out
}

// FilterByStatus returns the transactions in the given status, preserving input order.
func (s *TransactionService) FilterByStatus(transactions []domain.Transaction, status domain.TransactionStatus) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.Status == status {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCurrency returns the transactions whose source or target currency
// matches, preserving input order.
func (s *TransactionService) FilterByCurrency(transactions []domain.Transaction, currency domain.Currency) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.SourceAmount.Currency == currency || t.TargetAmount.Currency == currency {
			out = append(out, t)
		}
	}
	return out
}

// FilterByDateRange returns the transactions whose execution date falls within
// [start, end], inclusive, comparing the date component only.
func (s *TransactionService) FilterByDateRange(transactions []domain.Transaction, start, end time.Time) []domain.Transaction {
	startDay := toDate(start)
	endDay := toDate(end)
	out := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		day := toDate(t.ExecutionDate)
		if !day.Before(startDay) && !day.After(endDay) {
			out = append(out, t)
		}
	}
	return out
}

// FilterByCustomer returns the transactions for the given customer, preserving input order.
func (s *TransactionService) FilterByCustomer(transactions []domain.Transaction, customerID string) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if t.CustomerID == customerID {
			out = append(out, t)
		}
	}
	return out
}

// UpdateTransactionStatus moves a transaction to a new lifecycle state and persists it.
func (s *TransactionService) UpdateTransactionStatus(ctx context.Context, transactionID string, status domain.TransactionStatus) (*domain.Transaction, error) {
	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}

	if err := txn.UpdateStatus(status); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to save transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// CanRevertTransaction reports whether the user is authorized to revert
// transactions. Only administrators are.
func (s *TransactionService) CanRevertTransaction(user domain.User) bool {
	return user.Role == domain.RoleAdmin
}

// RevertTransaction irreversibly reverts a transaction on behalf of an
// administrator. The authorization check runs before any state is touched, so
// a denied attempt leaves the transaction unchanged.
func (s *TransactionService) RevertTransaction(ctx context.Context, transactionID, reason string, actor domain.User) (*domain.Transaction, error) {
	if !s.CanRevertTransaction(actor) {
		return nil, fmt.Errorf("%w: only administrators can revert transactions", apperrors.ErrForbidden)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: revert reason is required", apperrors.ErrValidation)
	}

	txn, err := s.txnRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}

	if err := txn.Revert(reason, actor.Username); err != nil {
		return nil, err
	}

	if err := s.txnRepo.SaveTransaction(ctx, *txn); err != nil {
		return nil, fmt.Errorf("failed to save reverted transaction %s: %w", transactionID, err)
	}
	return txn, nil
}

// toDate truncates a timestamp to its date component in UTC.
func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var _ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
