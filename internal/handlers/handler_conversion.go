package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/pingufin/fxdesk/internal/middleware"
)

// conversionHandler handles currency conversion quotes.
type conversionHandler struct {
	rateVersionService portssvc.RateVersionReaderSvc
	conversionService  portssvc.ConversionSvcFacade
}

func newConversionHandler(rvs portssvc.RateVersionReaderSvc, cs portssvc.ConversionSvcFacade) *conversionHandler {
	return &conversionHandler{
		rateVersionService: rvs,
		conversionService:  cs,
	}
}

// registerConversionRoutes registers routes related to conversion quotes.
func registerConversionRoutes(rg *gin.RouterGroup, rvs portssvc.RateVersionReaderSvc, cs portssvc.ConversionSvcFacade) {
	h := newConversionHandler(rvs, cs)

	conversions := rg.Group("/conversions")
	{
		conversions.POST("/quote", h.quote)
	}
}

// quote godoc
// @Summary Quote a currency conversion
// @Description Converts an amount between two currencies using the active exchange rate version.
// @Tags conversions
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Conversion request"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "No active rate version or missing rate"
// @Security BearerAuth
// @Router /conversions/quote [post]
func (h *conversionHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	sourceCurrency, err := domain.CurrencyFromCode(req.SourceCurrency)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	targetCurrency, err := domain.CurrencyFromCode(req.TargetCurrency)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	money, err := domain.NewMoney(req.Amount, sourceCurrency)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	version, err := h.rateVersionService.GetActiveRateVersion(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No active exchange rate version"})
		} else {
			logger.Error("Failed to load active rate version", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to quote conversion"})
		}
		return
	}

	converted, rate, err := h.conversionService.Convert(money, targetCurrency, version)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Conversion failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to quote conversion"})
		}
		return
	}

	logger.Info("Conversion quoted",
		slog.String("source", sourceCurrency.Code()),
		slog.String("target", targetCurrency.Code()),
		slog.String("rate", rate.String()),
	)
	c.JSON(http.StatusOK, dto.QuoteResponse{
		SourceAmount:          dto.ToMoneyResponse(money),
		TargetAmount:          dto.ToMoneyResponse(converted),
		ExchangeRate:          rate,
		ExchangeRateDisplay:   rate.InexactFloat64(),
		ExchangeRateVersionID: version.ID,
	})
}
