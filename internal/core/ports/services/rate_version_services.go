package services

import (
	"context"

	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/pingufin/fxdesk/internal/dto"
)

// RateVersionReaderSvc defines read operations for exchange rate versions.
type RateVersionReaderSvc interface {
	// GetRateVersionByID retrieves a version by id.
	GetRateVersionByID(ctx context.Context, versionID string) (*domain.ExchangeRateVersion, error)

	// GetActiveRateVersion retrieves the single active version, or
	// apperrors.ErrNotFound when none is active.
	GetActiveRateVersion(ctx context.Context) (*domain.ExchangeRateVersion, error)

	// ListRateVersions retrieves all versions, newest upload first.
	ListRateVersions(ctx context.Context) ([]domain.ExchangeRateVersion, error)
}

// RateVersionWriterSvc defines curation operations for exchange rate versions.
type RateVersionWriterSvc interface {
	// CreateRateVersion validates an upload payload (known currency codes,
	// positive rates, base rate within 1e-4 of 1.0) and stores it inactive.
	CreateRateVersion(ctx context.Context, req dto.CreateRateVersionRequest, uploadedBy string) (*domain.ExchangeRateVersion, error)

	// ActivateRateVersion makes versionID the single active version.
	ActivateRateVersion(ctx context.Context, versionID string) error
}

// RateVersionSvcFacade combines all rate-version service interfaces.
type RateVersionSvcFacade interface {
	RateVersionReaderSvc
	RateVersionWriterSvc
}
