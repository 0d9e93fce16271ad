package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

// validationHandler exposes the pre-submission validation endpoints. Clients
// post the current form state and get back the full verdict: field errors,
// document errors, normalized values and whether a submit would succeed.
type validationHandler struct {
	validationService portssvc.ValidationSvcFacade
}

func newValidationHandler(vs portssvc.ValidationSvcFacade) *validationHandler {
	return &validationHandler{
		validationService: vs,
	}
}

// registerValidationRoutes registers the per-document validation routes.
func registerValidationRoutes(rg *gin.RouterGroup, validationService portssvc.ValidationSvcFacade) {
	h := newValidationHandler(validationService)

	validate := rg.Group("/validate")
	{
		validate.POST("/journal-entry", h.validateJournalEntry)
		validate.POST("/deposit", h.validateDeposit)
		validate.POST("/opening-balance", h.validateOpeningBalance)
		validate.POST("/store-request", h.validateStoreRequest)
	}
}

// validateJournalEntry godoc
// @Summary Validate a journal entry form
// @Description Runs every gate over the form state without persisting anything
// @Tags validate
// @Accept  json
// @Produce  json
// @Param   entry body dto.ValidateJournalEntryRequest true "Form state"
// @Success 200 {object} dto.ValidationResult
// @Failure 400 {object} map[string]string "Malformed payload"
// @Failure 500 {object} map[string]string "Validation failed"
// @Security BearerAuth
// @Router /validate/journal-entry [post]
func (h *validationHandler) validateJournalEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.validationService.ValidateJournalEntry(c.Request.Context(), req)
	if err != nil {
		logger.Error("Journal entry validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// validateDeposit godoc
// @Summary Validate a deposit form
// @Description Runs every gate over the form state and computes the equivalent amount
// @Tags validate
// @Accept  json
// @Produce  json
// @Param   deposit body dto.ValidateDepositRequest true "Form state"
// @Success 200 {object} dto.ValidationResult
// @Failure 400 {object} map[string]string "Malformed payload"
// @Failure 500 {object} map[string]string "Validation failed"
// @Security BearerAuth
// @Router /validate/deposit [post]
func (h *validationHandler) validateDeposit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.validationService.ValidateDeposit(c.Request.Context(), req)
	if err != nil {
		logger.Error("Deposit validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// validateOpeningBalance godoc
// @Summary Validate an opening balance form
// @Description Runs every gate including the duplicate guard; pass edit=true when editing an existing record
// @Tags validate
// @Accept  json
// @Produce  json
// @Param   edit query bool false "Editing an existing record"
// @Param   balance body dto.ValidateOpeningBalanceRequest true "Form state"
// @Success 200 {object} dto.ValidationResult
// @Failure 400 {object} map[string]string "Malformed payload"
// @Failure 500 {object} map[string]string "Validation failed"
// @Security BearerAuth
// @Router /validate/opening-balance [post]
func (h *validationHandler) validateOpeningBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateOpeningBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	isEdit, _ := strconv.ParseBool(c.Query("edit"))

	result, err := h.validationService.ValidateOpeningBalance(c.Request.Context(), req, isEdit)
	if err != nil {
		logger.Error("Opening balance validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// validateStoreRequest godoc
// @Summary Validate a store request form
// @Tags validate
// @Accept  json
// @Produce  json
// @Param   request body dto.ValidateStoreRequestRequest true "Form state"
// @Success 200 {object} dto.ValidationResult
// @Failure 400 {object} map[string]string "Malformed payload"
// @Failure 500 {object} map[string]string "Validation failed"
// @Security BearerAuth
// @Router /validate/store-request [post]
func (h *validationHandler) validateStoreRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ValidateStoreRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.validationService.ValidateStoreRequest(c.Request.Context(), req)
	if err != nil {
		logger.Error("Store request validation failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Validation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
