package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portsrepo "github.com/pingufin/fxdesk/internal/core/ports/repositories"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/shopspring/decimal"
)

// baseRateTolerance is how far the base currency's own rate may deviate from 1.0.
var baseRateTolerance = decimal.NewFromFloat(1e-4)

// RateVersionService curates exchange rate versions: upload validation,
// activation, and lookups.
type RateVersionService struct {
	rateRepo portsrepo.RateVersionRepositoryFacade
}

// NewRateVersionService creates a new RateVersionService.
func NewRateVersionService(rateRepo portsrepo.RateVersionRepositoryFacade) *RateVersionService {
	return &RateVersionService{rateRepo: rateRepo}
}

// CreateRateVersion validates an upload payload and stores the version
// inactive. Activation is a separate, explicit step.
func (s *RateVersionService) CreateRateVersion(ctx context.Context, req dto.CreateRateVersionRequest, uploadedBy string) (*domain.ExchangeRateVersion, error) {
	if strings.TrimSpace(req.VersionName) == "" {
		return nil, fmt.Errorf("%w: version name is required", apperrors.ErrValidation)
	}

	baseCurrency, err := domain.CurrencyFromCode(req.BaseCurrency)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown base currency %q", apperrors.ErrValidation, req.BaseCurrency)
	}

	rates := make(map[domain.Currency]decimal.Decimal, len(req.Rates))
	for code, rate := range req.Rates {
		currency, err := domain.CurrencyFromCode(code)
		if err != nil {
			return nil, fmt.Errorf("%w: unknown currency %q in rates", apperrors.ErrValidation, code)
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, fmt.Errorf("%w: rate for %s must be positive", apperrors.ErrValidation, currency)
		}
		rates[currency] = rate
	}

	baseRate, ok := rates[baseCurrency]
	if !ok || baseRate.Sub(decimal.NewFromInt(1)).Abs().GreaterThan(baseRateTolerance) {
		return nil, fmt.Errorf("%w: base currency rate must be 1.0", apperrors.ErrValidation)
	}

	version := domain.NewExchangeRateVersion(req.VersionName, baseCurrency, rates, uploadedBy)
	if err := s.rateRepo.SaveRateVersion(ctx, version); err != nil {
		return nil, fmt.Errorf("failed to save rate version: %w", err)
	}
	return &version, nil
}

// ActivateRateVersion makes versionID the single active version. The swap is
// atomic in the repository: readers never observe two active versions, and an
// unknown id leaves the previously active version untouched.
func (s *RateVersionService) ActivateRateVersion(ctx context.Context, versionID string) error {
	if err := s.rateRepo.SetActiveVersion(ctx, versionID); err != nil {
		return fmt.Errorf("failed to activate rate version %s: %w", versionID, err)
	}
	return nil
}

// GetRateVersionByID retrieves a version by id.
func (s *RateVersionService) GetRateVersionByID(ctx context.Context, versionID string) (*domain.ExchangeRateVersion, error) {
	version, err := s.rateRepo.FindRateVersionByID(ctx, versionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rate version %s: %w", versionID, err)
	}
	return version, nil
}

// GetActiveRateVersion retrieves the single active version. Conversions require
// one; the wrapped ErrNotFound tells callers none is configured yet.
func (s *RateVersionService) GetActiveRateVersion(ctx context.Context) (*domain.ExchangeRateVersion, error) {
	version, err := s.rateRepo.FindActiveRateVersion(ctx)
	if err != nil {
		return nil, fmt.Errorf("no active exchange rate version: %w", err)
	}
	return version, nil
}

// ListRateVersions retrieves all versions, newest upload first.
func (s *RateVersionService) ListRateVersions(ctx context.Context) ([]domain.ExchangeRateVersion, error) {
	versions, err := s.rateRepo.ListRateVersions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list rate versions: %w", err)
	}
	if versions == nil {
		versions = []domain.ExchangeRateVersion{}
	}
	return versions, nil
}

var _ portssvc.RateVersionSvcFacade = (*RateVersionService)(nil)
