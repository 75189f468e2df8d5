package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pingufin/fxdesk/internal/apperrors"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/pingufin/fxdesk/internal/middleware"
)

// rateVersionHandler handles exchange rate version curation.
type rateVersionHandler struct {
	rateVersionService portssvc.RateVersionSvcFacade
}

func newRateVersionHandler(rvs portssvc.RateVersionSvcFacade) *rateVersionHandler {
	return &rateVersionHandler{rateVersionService: rvs}
}

// registerRateVersionRoutes registers routes related to exchange rate versions.
// Reads are open to every authenticated user; uploads and activation are
// admin-only.
func registerRateVersionRoutes(rg *gin.RouterGroup, rvs portssvc.RateVersionSvcFacade) {
	h := newRateVersionHandler(rvs)

	versions := rg.Group("/rate-versions")
	{
		versions.GET("", h.listRateVersions)
		versions.GET("/active", h.getActiveRateVersion)
		versions.GET("/:versionID", h.getRateVersion)

		admin := versions.Group("", middleware.RequireAdmin())
		admin.POST("", h.createRateVersion)
		admin.POST("/:versionID/activate", h.activateRateVersion)
	}
}

// createRateVersion godoc
// @Summary Upload a new exchange rate version
// @Description Validates and stores an uploaded rate table. The version starts inactive.
// @Tags rate versions
// @Accept json
// @Produce json
// @Param version body dto.CreateRateVersionRequest true "Rate version payload"
// @Success 201 {object} dto.RateVersionResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Security BearerAuth
// @Router /rate-versions [post]
func (h *rateVersionHandler) createRateVersion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateRateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	version, err := h.rateVersionService.CreateRateVersion(c.Request.Context(), req, actor.Username)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rate version upload rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to create rate version", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create rate version"})
		}
		return
	}

	logger.Info("Rate version created", slog.String("version_id", version.ID), slog.String("version_name", version.VersionName))
	c.JSON(http.StatusCreated, dto.ToRateVersionResponse(version))
}

// activateRateVersion godoc
// @Summary Activate an exchange rate version
// @Description Makes the given version the single active one. Any previously active version is deactivated in the same step.
// @Tags rate versions
// @Produce json
// @Param versionID path string true "Version ID"
// @Success 200 {object} dto.RateVersionResponse
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /rate-versions/{versionID}/activate [post]
func (h *rateVersionHandler) activateRateVersion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	versionID := c.Param("versionID")

	if err := h.rateVersionService.ActivateRateVersion(c.Request.Context(), versionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rate version not found"})
		} else {
			logger.Error("Failed to activate rate version", slog.String("version_id", versionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to activate rate version"})
		}
		return
	}

	version, err := h.rateVersionService.GetRateVersionByID(c.Request.Context(), versionID)
	if err != nil {
		logger.Error("Failed to reload activated version", slog.String("version_id", versionID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to activate rate version"})
		return
	}

	logger.Info("Rate version activated", slog.String("version_id", versionID))
	c.JSON(http.StatusOK, dto.ToRateVersionResponse(version))
}

// listRateVersions godoc
// @Summary List exchange rate versions
// @Tags rate versions
// @Produce json
// @Success 200 {array} dto.RateVersionResponse
// @Security BearerAuth
// @Router /rate-versions [get]
func (h *rateVersionHandler) listRateVersions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	versions, err := h.rateVersionService.ListRateVersions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list rate versions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list rate versions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListRateVersionResponse(versions))
}

// getActiveRateVersion godoc
// @Summary Get the active exchange rate version
// @Tags rate versions
// @Produce json
// @Success 200 {object} dto.RateVersionResponse
// @Failure 404 {object} ErrorResponse "No active version"
// @Security BearerAuth
// @Router /rate-versions/active [get]
func (h *rateVersionHandler) getActiveRateVersion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	version, err := h.rateVersionService.GetActiveRateVersion(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "No active exchange rate version"})
		} else {
			logger.Error("Failed to get active rate version", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get active rate version"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRateVersionResponse(version))
}

// getRateVersion godoc
// @Summary Get an exchange rate version by id
// @Tags rate versions
// @Produce json
// @Param versionID path string true "Version ID"
// @Success 200 {object} dto.RateVersionResponse
// @Failure 404 {object} ErrorResponse "Version not found"
// @Security BearerAuth
// @Router /rate-versions/{versionID} [get]
func (h *rateVersionHandler) getRateVersion(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	versionID := c.Param("versionID")

	version, err := h.rateVersionService.GetRateVersionByID(c.Request.Context(), versionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Rate version not found"})
		} else {
			logger.Error("Failed to get rate version", slog.String("version_id", versionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get rate version"})
		}
		return
	}
	c.JSON(http.StatusOK, dto.ToRateVersionResponse(version))
}
