package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pingufin/fxdesk/internal/apperrors"
	"github.com/pingufin/fxdesk/internal/core/domain"
	portssvc "github.com/pingufin/fxdesk/internal/core/ports/services"
	"github.com/pingufin/fxdesk/internal/dto"
	"github.com/pingufin/fxdesk/internal/middleware"
)

// transactionHandler handles the transaction lifecycle.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers transaction routes. Reversal is
// admin-only; every other route is scoped to the acting user by the service.
func registerTransactionRoutes(rg *gin.RouterGroup, ts portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(ts)

	transactions := rg.Group("/transactions")
	{
		transactions.POST("", h.createTransaction)
		transactions.GET("", h.listTransactions)
		transactions.GET("/:transactionID", h.getTransaction)
		transactions.PATCH("/:transactionID/status", h.updateTransactionStatus)
		transactions.POST("/:transactionID/revert", middleware.RequireAdmin(), h.revertTransaction)
	}
}

// createTransaction godoc
// @Summary Record a currency exchange transaction
// @Description Converts the requested amount against the active rate version and records the transaction for the acting consultant.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction payload"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid payload"
// @Failure 404 {object} ErrorResponse "No active rate version or missing rate"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", txn.ID),
		slog.String("consultant_id", txn.ConsultantID),
		slog.String("customer_id", txn.CustomerID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists transactions matching the query filters. Consultants only see their own transactions; administrators see all.
// @Tags transactions
// @Produce json
// @Param customerID query string false "Filter by customer"
// @Param status query string false "Filter by lifecycle status"
// @Param currency query string false "Filter by source or target currency"
// @Param fromDate query string false "Inclusive lower execution date bound (RFC 3339 date)"
// @Param toDate query string false "Inclusive upper execution date bound (RFC 3339 date)"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	filter, err := parseTransactionFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), filter, actor)
	if err != nil {
		logger.Error("Failed to list transactions", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list transactions"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListTransactionResponse(txns))
}

// parseTransactionFilter builds a dto.TransactionFilter from query parameters.
func parseTransactionFilter(c *gin.Context) (dto.TransactionFilter, error) {
	filter := dto.TransactionFilter{
		CustomerID: c.Query("customerID"),
	}

	if raw := c.Query("status"); raw != "" {
		status, err := domain.ParseTransactionStatus(raw)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}
	if raw := c.Query("currency"); raw != "" {
		currency, err := domain.CurrencyFromCode(raw)
		if err != nil {
			return filter, err
		}
		filter.Currency = &currency
	}
	if raw := c.Query("fromDate"); raw != "" {
		fromDate, err := parseDateParam("fromDate", raw)
		if err != nil {
			return filter, err
		}
		filter.FromDate = &fromDate
	}
	if raw := c.Query("toDate"); raw != "" {
		toDate, err := parseDateParam("toDate", raw)
		if err != nil {
			return filter, err
		}
		filter.ToDate = &toDate
	}
	return filter, nil
}

func parseDateParam(name, raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid %s, expected YYYY-MM-DD", apperrors.ErrValidation, name)
	}
	return t, nil
}

// getTransaction godoc
// @Summary Get a transaction by id
// @Tags transactions
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /transactions/{transactionID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	txn, err := h.transactionService.GetTransactionByID(c.Request.Context(), transactionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		} else {
			logger.Error("Failed to get transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get transaction"})
		}
		return
	}

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	if actor.Role != domain.RoleAdmin && txn.ConsultantID != actor.UserID {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// updateTransactionStatus godoc
// @Summary Update a transaction's lifecycle status
// @Description Moves a transaction to a new non-terminal state. Reverted transactions cannot change state.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param status body dto.UpdateTransactionStatusRequest true "New status"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Transaction is reverted"
// @Security BearerAuth
// @Router /transactions/{transactionID}/status [patch]
func (h *transactionHandler) updateTransactionStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	status, err := domain.ParseTransactionStatus(req.Status)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	txn, err := h.transactionService.UpdateTransactionStatus(c.Request.Context(), transactionID, status)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to update transaction status", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update transaction status"})
		}
		return
	}

	logger.Info("Transaction status updated", slog.String("transaction_id", transactionID), slog.String("status", string(status)))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// revertTransaction godoc
// @Summary Revert a transaction
// @Description Irreversibly reverts a transaction with an audit reason. Admin only.
// @Tags transactions
// @Accept json
// @Produce json
// @Param transactionID path string true "Transaction ID"
// @Param revert body dto.RevertTransactionRequest true "Reversal reason"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Blank reason"
// @Failure 403 {object} ErrorResponse "Admin privileges required"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Transaction already reverted"
// @Security BearerAuth
// @Router /transactions/{transactionID}/revert [post]
func (h *transactionHandler) revertTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("transactionID")

	var req dto.RevertTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetCurrentUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	txn, err := h.transactionService.RevertTransaction(c.Request.Context(), transactionID, req.Reason, actor)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin privileges required to revert a transaction"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Transaction not found"})
		case errors.Is(err, apperrors.ErrInvalidState):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to revert transaction", slog.String("transaction_id", transactionID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to revert transaction"})
		}
		return
	}

	logger.Info("Transaction reverted",
		slog.String("transaction_id", transactionID),
		slog.String("reverted_by", actor.Username))
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}
