package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

// financialYearHandler handles HTTP requests related to financial years.
type financialYearHandler struct {
	fyService portssvc.FinancialYearSvcFacade
}

func newFinancialYearHandler(fs portssvc.FinancialYearSvcFacade) *financialYearHandler {
	return &financialYearHandler{
		fyService: fs,
	}
}

// registerFinancialYearRoutes registers routes related to financial years.
func registerFinancialYearRoutes(rg *gin.RouterGroup, fyService portssvc.FinancialYearSvcFacade) {
	h := newFinancialYearHandler(fyService)

	years := rg.Group("/financial-years")
	{
		years.POST("", h.createFinancialYear)
		years.GET("", h.listFinancialYears)
		years.GET("/current", h.getCurrentFinancialYear)
		years.GET("/:financialYearID", h.getFinancialYearByID)
		years.PUT("/:financialYearID", h.updateFinancialYear)
	}
}

// createFinancialYear godoc
// @Summary Create a financial year
// @Description Creates a posting window; setting isCurrent demotes the previous current year
// @Tags financial-years
// @Accept  json
// @Produce  json
// @Param   financialYear body dto.CreateFinancialYearRequest true "Financial year details"
// @Success 201 {object} dto.FinancialYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create financial year"
// @Security BearerAuth
// @Router /financial-years [post]
func (h *financialYearHandler) createFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFinancialYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create financial year", slog.String("name", req.Name))

	created, err := h.fyService.CreateFinancialYear(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating financial year", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create financial year in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create financial year"})
		}
		return
	}

	logger.Info("Financial year created successfully", slog.String("financial_year_id", created.FinancialYearID))
	c.JSON(http.StatusCreated, dto.ToFinancialYearResponse(created))
}

// getFinancialYearByID godoc
// @Summary Get a financial year by ID
// @Tags financial-years
// @Produce  json
// @Param   financialYearID path string true "Financial Year ID"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} map[string]string "Financial year not found"
// @Failure 500 {object} map[string]string "Failed to retrieve financial year"
// @Security BearerAuth
// @Router /financial-years/{financialYearID} [get]
func (h *financialYearHandler) getFinancialYearByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	financialYearID := c.Param("financialYearID")

	fy, err := h.fyService.GetFinancialYearByID(c.Request.Context(), financialYearID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Financial year not found", slog.String("financial_year_id", financialYearID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Financial year not found"})
		} else {
			logger.Error("Failed to get financial year from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve financial year"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy))
}

// getCurrentFinancialYear godoc
// @Summary Get the current financial year
// @Description Retrieves the year documents default into when no year is selected
// @Tags financial-years
// @Produce  json
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} map[string]string "No current financial year"
// @Failure 500 {object} map[string]string "Failed to retrieve financial year"
// @Security BearerAuth
// @Router /financial-years/current [get]
func (h *financialYearHandler) getCurrentFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fy, err := h.fyService.GetCurrentFinancialYear(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("No current financial year configured")
			c.JSON(http.StatusNotFound, gin.H{"error": "No current financial year"})
		} else {
			logger.Error("Failed to get current financial year from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve financial year"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy))
}

// listFinancialYears godoc
// @Summary List financial years
// @Tags financial-years
// @Produce  json
// @Param   activeOnly query bool false "Only active years"
// @Success 200 {array} dto.FinancialYearResponse
// @Failure 500 {object} map[string]string "Failed to list financial years"
// @Security BearerAuth
// @Router /financial-years [get]
func (h *financialYearHandler) listFinancialYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	activeOnly, _ := strconv.ParseBool(c.Query("activeOnly"))

	years, err := h.fyService.ListFinancialYears(c.Request.Context(), activeOnly)
	if err != nil {
		logger.Error("Failed to list financial years from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list financial years"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialYearResponses(years))
}

// updateFinancialYear godoc
// @Summary Update a financial year
// @Description Updates the display name and flags; the window itself is immutable
// @Tags financial-years
// @Accept  json
// @Produce  json
// @Param   financialYearID path string true "Financial Year ID"
// @Param   financialYear body dto.UpdateFinancialYearRequest true "Fields to update"
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Financial year not found"
// @Failure 500 {object} map[string]string "Failed to update financial year"
// @Security BearerAuth
// @Router /financial-years/{financialYearID} [put]
func (h *financialYearHandler) updateFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	financialYearID := c.Param("financialYearID")

	var req dto.UpdateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateFinancialYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	updated, err := h.fyService.UpdateFinancialYear(c.Request.Context(), financialYearID, req, updaterUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Financial year not found for update", slog.String("financial_year_id", financialYearID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Financial year not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating financial year", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update financial year in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update financial year"})
		}
		return
	}

	logger.Info("Financial year updated successfully", slog.String("financial_year_id", financialYearID))
	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(updated))
}
