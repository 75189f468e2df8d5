package pgsql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portsrepo "github.com/pingufin/fxdesk/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// PgxRateVersionRepository implements the rate-version store using pgxpool.
//
// Rates are persisted as a JSONB object mapping currency codes to decimal
// strings, so the values round-trip as exact decimal text rather than binary
// floating point.
type PgxRateVersionRepository struct {
	BaseRepository
}

// NewPgxRateVersionRepository creates a new PgxRateVersionRepository.
func NewPgxRateVersionRepository(db *pgxpool.Pool) *PgxRateVersionRepository {
	return &PgxRateVersionRepository{BaseRepository: BaseRepository{Pool: db}}
}

const rateVersionColumns = `exchange_rate_version_id, version_name, base_currency, rates, uploaded_at, uploaded_by, active`

// SaveRateVersion inserts or updates a version by id.
func (r *PgxRateVersionRepository) SaveRateVersion(ctx context.Context, version domain.ExchangeRateVersion) error {
	ratesJSON, err := marshalRates(version.Rates)
	if err != nil {
		return fmt.Errorf("failed to encode rates: %w", err)
	}

	_, err = r.Pool.Exec(ctx, `
		INSERT INTO exchange_rate_versions (`+rateVersionColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (exchange_rate_version_id) DO UPDATE SET
			version_name = EXCLUDED.version_name,
			base_currency = EXCLUDED.base_currency,
			rates = EXCLUDED.rates,
			uploaded_at = EXCLUDED.uploaded_at,
			uploaded_by = EXCLUDED.uploaded_by`,
		version.ID, version.VersionName, version.BaseCurrency.Code(), ratesJSON,
		version.UploadedAt, version.UploadedBy, version.Active,
	)
	if err != nil {
		return fmt.Errorf("failed to save rate version: %w", err)
	}
	return nil
}

// FindRateVersionByID retrieves a version by id.
func (r *PgxRateVersionRepository) FindRateVersionByID(ctx context.Context, versionID string) (*domain.ExchangeRateVersion, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+rateVersionColumns+` FROM exchange_rate_versions WHERE exchange_rate_version_id = $1`,
		versionID,
	)
	return scanRateVersion(row)
}

// FindActiveRateVersion retrieves the single active version.
func (r *PgxRateVersionRepository) FindActiveRateVersion(ctx context.Context) (*domain.ExchangeRateVersion, error) {
	row := r.Pool.QueryRow(ctx,
		`SELECT `+rateVersionColumns+` FROM exchange_rate_versions WHERE active`,
	)
	return scanRateVersion(row)
}

// ListRateVersions retrieves all versions, newest upload first.
func (r *PgxRateVersionRepository) ListRateVersions(ctx context.Context) ([]domain.ExchangeRateVersion, error) {
	rows, err := r.Pool.Query(ctx,
		`SELECT `+rateVersionColumns+` FROM exchange_rate_versions ORDER BY uploaded_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate versions: %w", err)
	}
	defer rows.Close()

	var versions []domain.ExchangeRateVersion
	for rows.Next() {
		version, err := scanRateVersion(rows)
		if err != nil {
			return nil, err
		}
		versions = append(versions, *version)
	}
	return versions, rows.Err()
}

// SetActiveVersion deactivates every active version and activates versionID in
// one database transaction. Readers never observe an intermediate state, and
// concurrent activations serialize on the updated rows. An unknown id rolls
// the swap back, leaving the previously active version in place.
func (r *PgxRateVersionRepository) SetActiveVersion(ctx context.Context, versionID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	if _, err := tx.Exec(ctx, `UPDATE exchange_rate_versions SET active = FALSE WHERE active`); err != nil {
		return fmt.Errorf("failed to deactivate rate versions: %w", err)
	}

	tag, err := tx.Exec(ctx,
		`UPDATE exchange_rate_versions SET active = TRUE WHERE exchange_rate_version_id = $1`,
		versionID,
	)
	if err != nil {
		return fmt.Errorf("failed to activate rate version: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: rate version %s", apperrors.ErrNotFound, versionID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit version activation: %w", err)
	}
	return nil
}

func marshalRates(rates map[domain.Currency]decimal.Decimal) ([]byte, error) {
	wire := make(map[string]decimal.Decimal, len(rates))
	for currency, rate := range rates {
		wire[currency.Code()] = rate
	}
	return json.Marshal(wire)
}

func scanRateVersion(row pgx.Row) (*domain.ExchangeRateVersion, error) {
	var (
		version      domain.ExchangeRateVersion
		baseCurrency string
		ratesJSON    []byte
		uploadedAt   time.Time
	)
	err := row.Scan(&version.ID, &version.VersionName, &baseCurrency, &ratesJSON,
		&uploadedAt, &version.UploadedBy, &version.Active)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: exchange rate version", apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan rate version: %w", err)
	}

	base, err := domain.CurrencyFromCode(baseCurrency)
	if err != nil {
		return nil, fmt.Errorf("stored base currency is invalid: %w", err)
	}

	var wire map[string]decimal.Decimal
	if err := json.Unmarshal(ratesJSON, &wire); err != nil {
		return nil, fmt.Errorf("failed to decode rates: %w", err)
	}
	rates := make(map[domain.Currency]decimal.Decimal, len(wire))
	for code, rate := range wire {
		currency, err := domain.CurrencyFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("stored rate currency is invalid: %w", err)
		}
		rates[currency] = rate
	}

	version.BaseCurrency = base
	version.Rates = rates
	version.UploadedAt = uploadedAt
	return &version, nil
}

var _ portsrepo.RateVersionRepositoryFacade = (*PgxRateVersionRepository)(nil)
