package domain_test

import (
	"testing"
	"time"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransaction(t *testing.T) domain.Transaction {
	t.Helper()
	source := domain.MustMoney(decimal.NewFromInt(100), domain.EUR)
	target := domain.MustMoney(decimal.NewFromFloat(109.52), domain.USD)
	rate, err := decimal.NewFromString("1.095238")
	require.NoError(t, err)
	return domain.NewTransaction("consultant-1", "customer-1", source, target, rate, "version-1", time.Now().UTC(), "alice")
}

func TestNewTransaction_Defaults(t *testing.T) {
	txn := newTestTransaction(t)

	assert.NotEmpty(t, txn.ID)
	assert.Equal(t, domain.StatusNotStarted, txn.Status)
	assert.False(t, txn.IsReverted())
	assert.Empty(t, txn.RevertReason)
	assert.Nil(t, txn.RevertedAt)
}

func TestTransaction_UpdateStatus(t *testing.T) {
	tests := []struct {
		name string
		from domain.TransactionStatus
		to   domain.TransactionStatus
	}{
		{name: "not started to executed", from: domain.StatusNotStarted, to: domain.StatusExecuted},
		{name: "executed to completed", from: domain.StatusExecuted, to: domain.StatusCompleted},
		{name: "completed back to executed", from: domain.StatusCompleted, to: domain.StatusExecuted},
		{name: "cancelled to not started", from: domain.StatusCancelled, to: domain.StatusNotStarted},
		{name: "executed to cancelled", from: domain.StatusExecuted, to: domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := newTestTransaction(t)
			txn.Status = tt.from

			err := txn.UpdateStatus(tt.to)

			require.NoError(t, err)
			assert.Equal(t, tt.to, txn.Status)
		})
	}
}

func TestTransaction_UpdateStatus_RevertedIsTerminal(t *testing.T) {
	txn := newTestTransaction(t)
	require.NoError(t, txn.Revert("duplicate booking", "admin"))

	err := txn.UpdateStatus(domain.StatusExecuted)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	assert.Equal(t, domain.StatusReverted, txn.Status)
}

func TestTransaction_Revert(t *testing.T) {
	fromStates := []domain.TransactionStatus{
		domain.StatusNotStarted,
		domain.StatusExecuted,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, from := range fromStates {
		t.Run(string(from), func(t *testing.T) {
			txn := newTestTransaction(t)
			txn.Status = from

			err := txn.Revert("customer dispute", "admin")

			require.NoError(t, err)
			assert.Equal(t, domain.StatusReverted, txn.Status)
			assert.True(t, txn.IsReverted())
			assert.Equal(t, "customer dispute", txn.RevertReason)
			assert.Equal(t, "admin", txn.RevertedBy)
			require.NotNil(t, txn.RevertedAt)
			assert.WithinDuration(t, time.Now().UTC(), *txn.RevertedAt, time.Minute)
		})
	}
}

func TestTransaction_Revert_Twice(t *testing.T) {
	txn := newTestTransaction(t)
	require.NoError(t, txn.Revert("first reason", "admin"))
	firstRevertedAt := *txn.RevertedAt

	err := txn.Revert("second reason", "other-admin")

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidState)
	// The first reversal's audit trail is untouched.
	assert.Equal(t, "first reason", txn.RevertReason)
	assert.Equal(t, "admin", txn.RevertedBy)
	assert.Equal(t, firstRevertedAt, *txn.RevertedAt)
}

func TestParseTransactionStatus(t *testing.T) {
	tests := []struct {
		input   string
		want    domain.TransactionStatus
		wantErr bool
	}{
		{input: "NOT_STARTED", want: domain.StatusNotStarted},
		{input: "executed", want: domain.StatusExecuted},
		{input: " Completed ", want: domain.StatusCompleted},
		{input: "CANCELLED", want: domain.StatusCancelled},
		{input: "REVERTED", want: domain.StatusReverted},
		{input: "DONE", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.ParseTransactionStatus(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
