package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

// depositHandler handles HTTP requests related to customer deposits.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{
		depositService: ds,
	}
}

// registerDepositRoutes registers routes related to customer deposits.
func registerDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.createDeposit)
		deposits.GET("", h.listDeposits)
		deposits.GET("/:depositID", h.getDepositByID)
		deposits.PATCH("/:depositID/amounts", h.recalculateAmounts)
	}
}

// createDeposit godoc
// @Summary Create a customer deposit
// @Description Records a deposit; the equivalent amount in the default currency is derived from the resolved rate
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   deposit body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "No rate available and lookups are blocked"
// @Failure 500 {object} map[string]string "Failed to create deposit"
// @Security BearerAuth
// @Router /deposits [post]
func (h *depositHandler) createDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDeposit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create deposit", slog.String("customer_id", req.CustomerID))

	created, err := h.depositService.CreateDeposit(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrRateUnavailable) {
			logger.Warn("Rate unavailable for deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) ||
			errors.Is(err, apperrors.ErrDateOutOfWindow) ||
			errors.Is(err, apperrors.ErrYearClosed) ||
			errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Validation error creating deposit", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create deposit in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deposit"})
		}
		return
	}

	logger.Info("Deposit created successfully", slog.String("deposit_id", created.DepositID))
	c.JSON(http.StatusCreated, dto.ToDepositResponse(created))
}

// getDepositByID godoc
// @Summary Get a deposit by ID
// @Tags deposits
// @Produce  json
// @Param   depositID path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 500 {object} map[string]string "Failed to retrieve deposit"
// @Security BearerAuth
// @Router /deposits/{depositID} [get]
func (h *depositHandler) getDepositByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	depositID := c.Param("depositID")

	deposit, err := h.depositService.GetDepositByID(c.Request.Context(), depositID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Deposit not found", slog.String("deposit_id", depositID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit not found"})
		} else {
			logger.Error("Failed to get deposit from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deposit"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List customer deposits
// @Description Returns a token-paginated page of deposits, newest first
// @Tags deposits
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListDepositsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list deposits"
// @Security BearerAuth
// @Router /deposits [get]
func (h *depositHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListDepositsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.depositService.ListDeposits(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list deposits from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list deposits"})
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

// recalculateAmounts godoc
// @Summary Recalculate a deposit's amounts
// @Description Applies a single edited amount field and recomputes the other two. Exactly one of exchangeRate, originalAmount or equivalentAmount must be set.
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   depositID path string true "Deposit ID"
// @Param   amounts body dto.UpdateDepositAmountsRequest true "The edited field"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Deposit not found"
// @Failure 500 {object} map[string]string "Failed to recalculate amounts"
// @Security BearerAuth
// @Router /deposits/{depositID}/amounts [patch]
func (h *depositHandler) recalculateAmounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	depositID := c.Param("depositID")

	var req dto.UpdateDepositAmountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecalculateAmounts", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.depositService.RecalculateAmounts(c.Request.Context(), depositID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Deposit not found for recalculation", slog.String("deposit_id", depositID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Deposit not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recalculating deposit amounts", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to recalculate deposit amounts in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recalculate amounts"})
		}
		return
	}

	logger.Info("Deposit amounts recalculated", slog.String("deposit_id", depositID))
	c.JSON(http.StatusOK, dto.ToDepositResponse(updated))
}
