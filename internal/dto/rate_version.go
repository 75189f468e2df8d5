package dto

import (
	"time"

	"github.com/pingufin/fxdesk/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRateVersionRequest is the upload payload for a new exchange rate
// version. Rates map currency codes to base-relative rates; the base currency
// itself must be present and map to 1.0 (within 1e-4).
type CreateRateVersionRequest struct {
	VersionName  string                     `json:"versionName" binding:"required"`
	BaseCurrency string                     `json:"baseCurrency" binding:"required,currencycode"`
	Rates        map[string]decimal.Decimal `json:"rates" binding:"required,min=1"`
}

// RateVersionResponse is the wire form of an exchange rate version.
type RateVersionResponse struct {
	ID           string                     `json:"id"`
	VersionName  string                     `json:"versionName"`
	BaseCurrency string                     `json:"baseCurrency"`
	Rates        map[string]decimal.Decimal `json:"rates"`
	UploadedAt   time.Time                  `json:"uploadedAt"`
	UploadedBy   string                     `json:"uploadedBy"`
	Active       bool                       `json:"active"`
}

// ToRateVersionResponse converts a domain.ExchangeRateVersion to its response DTO.
func ToRateVersionResponse(v *domain.ExchangeRateVersion) RateVersionResponse {
	rates := make(map[string]decimal.Decimal, len(v.Rates))
	for currency, rate := range v.Rates {
		rates[currency.Code()] = rate
	}
	return RateVersionResponse{
		ID:           v.ID,
		VersionName:  v.VersionName,
		BaseCurrency: v.BaseCurrency.Code(),
		Rates:        rates,
		UploadedAt:   v.UploadedAt,
		UploadedBy:   v.UploadedBy,
		Active:       v.Active,
	}
}

// ToListRateVersionResponse converts a slice of versions to response DTOs.
func ToListRateVersionResponse(versions []domain.ExchangeRateVersion) []RateVersionResponse {
	responses := make([]RateVersionResponse, len(versions))
	for i := range versions {
		responses[i] = ToRateVersionResponse(&versions[i])
	}
	return responses
}
