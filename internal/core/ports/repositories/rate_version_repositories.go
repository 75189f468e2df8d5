package repositories

import (
	"context"

	"github.com/pingufin/fxdesk/internal/core/domain"
)

// RateVersionReader defines read operations for exchange rate versions.
type RateVersionReader interface {
	// FindRateVersionByID retrieves a specific version by its id.
	FindRateVersionByID(ctx context.Context, versionID string) (*domain.ExchangeRateVersion, error)

	// FindActiveRateVersion retrieves the single currently active version.
	// It returns apperrors.ErrNotFound when no version is active.
	FindActiveRateVersion(ctx context.Context) (*domain.ExchangeRateVersion, error)

	// ListRateVersions retrieves all versions, newest upload first.
	ListRateVersions(ctx context.Context) ([]domain.ExchangeRateVersion, error)
}

// RateVersionWriter defines write operations for exchange rate versions.
type RateVersionWriter interface {
	// SaveRateVersion persists a version (upsert by id).
	SaveRateVersion(ctx context.Context, version domain.ExchangeRateVersion) error

	// SetActiveVersion deactivates every currently active version and activates
	// the one matching versionID, as a single atomic step: a concurrent reader
	// never observes more than one active version. If versionID does not match
	// any stored version the swap is rolled back, the previously active version
	// keeps its flag, and apperrors.ErrNotFound is returned.
	SetActiveVersion(ctx context.Context, versionID string) error
}

// RateVersionRepositoryFacade combines all rate-version repository interfaces.
type RateVersionRepositoryFacade interface {
	RateVersionReader
	RateVersionWriter
}
