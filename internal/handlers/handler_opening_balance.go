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

// openingBalanceHandler handles HTTP requests related to opening balances.
type openingBalanceHandler struct {
	obService portssvc.OpeningBalanceSvcFacade
}

func newOpeningBalanceHandler(os portssvc.OpeningBalanceSvcFacade) *openingBalanceHandler {
	return &openingBalanceHandler{
		obService: os,
	}
}

// registerOpeningBalanceRoutes registers routes related to opening balances.
func registerOpeningBalanceRoutes(rg *gin.RouterGroup, obService portssvc.OpeningBalanceSvcFacade) {
	h := newOpeningBalanceHandler(obService)

	balances := rg.Group("/opening-balances")
	{
		balances.POST("", h.createOpeningBalance)
		balances.GET("", h.listOpeningBalances)
		balances.GET("/check", h.checkDuplicate)
		balances.GET("/:openingBalanceID", h.getOpeningBalanceByID)
		balances.PUT("/:openingBalanceID", h.updateOpeningBalance)
		balances.DELETE("/:openingBalanceID", h.deleteOpeningBalance)
	}
}

// createOpeningBalance godoc
// @Summary Create an opening balance
// @Description Records the opening balance for an account in a financial year; at most one per pair
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   balance body dto.CreateOpeningBalanceRequest true "Opening balance details"
// @Success 201 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Opening balance already exists for the account and year"
// @Failure 500 {object} map[string]string "Failed to create opening balance"
// @Security BearerAuth
// @Router /opening-balances [post]
func (h *openingBalanceHandler) createOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create opening balance",
		slog.String("account_id", req.AccountID),
		slog.String("financial_year_id", req.FinancialYearID))

	created, err := h.obService.CreateOpeningBalance(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Duplicate opening balance rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) ||
			errors.Is(err, apperrors.ErrDateOutOfWindow) ||
			errors.Is(err, apperrors.ErrYearClosed) ||
			errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Validation error creating opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create opening balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create opening balance"})
		}
		return
	}

	logger.Info("Opening balance created successfully", slog.String("opening_balance_id", created.OpeningBalanceID))
	c.JSON(http.StatusCreated, dto.ToOpeningBalanceResponse(created))
}

// checkDuplicate godoc
// @Summary Check for an existing opening balance
// @Description Reports whether the account already has an opening balance in the year. Lookup failures report no duplicate so forms stay usable; the create path still enforces the constraint.
// @Tags opening-balances
// @Produce  json
// @Param   accountID query string true "Account ID"
// @Param   financialYearID query string true "Financial Year ID"
// @Success 200 {object} dto.OpeningBalanceCheckResponse
// @Failure 400 {object} map[string]string "Missing parameters"
// @Security BearerAuth
// @Router /opening-balances/check [get]
func (h *openingBalanceHandler) checkDuplicate(c *gin.Context) {
	accountID := c.Query("accountID")
	financialYearID := c.Query("financialYearID")
	if accountID == "" || financialYearID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "accountID and financialYearID query parameters are required"})
		return
	}

	// CheckDuplicate never fails; lookup errors report no duplicate.
	exists, _ := h.obService.CheckDuplicate(c.Request.Context(), accountID, financialYearID)

	c.JSON(http.StatusOK, dto.OpeningBalanceCheckResponse{
		AccountID:       accountID,
		FinancialYearID: financialYearID,
		Exists:          exists,
	})
}

// getOpeningBalanceByID godoc
// @Summary Get an opening balance by ID
// @Tags opening-balances
// @Produce  json
// @Param   openingBalanceID path string true "Opening Balance ID"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to retrieve opening balance"
// @Security BearerAuth
// @Router /opening-balances/{openingBalanceID} [get]
func (h *openingBalanceHandler) getOpeningBalanceByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	openingBalanceID := c.Param("openingBalanceID")

	ob, err := h.obService.GetOpeningBalanceByID(c.Request.Context(), openingBalanceID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Opening balance not found", slog.String("opening_balance_id", openingBalanceID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Opening balance not found"})
		} else {
			logger.Error("Failed to get opening balance from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve opening balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponse(ob))
}

// listOpeningBalances godoc
// @Summary List opening balances for a financial year
// @Tags opening-balances
// @Produce  json
// @Param   financialYearID query string true "Financial Year ID"
// @Success 200 {array} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Missing financial year"
// @Failure 500 {object} map[string]string "Failed to list opening balances"
// @Security BearerAuth
// @Router /opening-balances [get]
func (h *openingBalanceHandler) listOpeningBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	financialYearID := c.Query("financialYearID")
	if financialYearID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "financialYearID query parameter is required"})
		return
	}

	balances, err := h.obService.ListOpeningBalancesByYear(c.Request.Context(), financialYearID)
	if err != nil {
		logger.Error("Failed to list opening balances from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list opening balances"})
		return
	}

	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponses(balances))
}

// updateOpeningBalance godoc
// @Summary Update an opening balance
// @Description Updates the date, side, amount and notes; the account and year pair is immutable
// @Tags opening-balances
// @Accept  json
// @Produce  json
// @Param   openingBalanceID path string true "Opening Balance ID"
// @Param   balance body dto.UpdateOpeningBalanceRequest true "Fields to update"
// @Success 200 {object} dto.OpeningBalanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to update opening balance"
// @Security BearerAuth
// @Router /opening-balances/{openingBalanceID} [put]
func (h *openingBalanceHandler) updateOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	openingBalanceID := c.Param("openingBalanceID")

	var req dto.UpdateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateOpeningBalance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.obService.UpdateOpeningBalance(c.Request.Context(), openingBalanceID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Opening balance not found for update", slog.String("opening_balance_id", openingBalanceID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Opening balance not found"})
		} else if errors.Is(err, apperrors.ErrValidation) ||
			errors.Is(err, apperrors.ErrDateOutOfWindow) ||
			errors.Is(err, apperrors.ErrYearClosed) {
			logger.Warn("Validation error updating opening balance", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update opening balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update opening balance"})
		}
		return
	}

	logger.Info("Opening balance updated successfully", slog.String("opening_balance_id", openingBalanceID))
	c.JSON(http.StatusOK, dto.ToOpeningBalanceResponse(updated))
}

// deleteOpeningBalance godoc
// @Summary Delete an opening balance
// @Tags opening-balances
// @Produce  json
// @Param   openingBalanceID path string true "Opening Balance ID"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Opening balance not found"
// @Failure 500 {object} map[string]string "Failed to delete opening balance"
// @Security BearerAuth
// @Router /opening-balances/{openingBalanceID} [delete]
func (h *openingBalanceHandler) deleteOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	openingBalanceID := c.Param("openingBalanceID")

	if _, ok := middleware.GetUserIDFromContext(c); !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.obService.DeleteOpeningBalance(c.Request.Context(), openingBalanceID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Opening balance not found for deletion", slog.String("opening_balance_id", openingBalanceID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Opening balance not found"})
		} else {
			logger.Error("Failed to delete opening balance in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete opening balance"})
		}
		return
	}

	logger.Info("Opening balance deleted", slog.String("opening_balance_id", openingBalanceID))
	c.Status(http.StatusNoContent)
}
