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

// preferenceHandler handles HTTP requests for the caller's own preferences.
type preferenceHandler struct {
	prefService portssvc.PreferenceSvcFacade
}

func newPreferenceHandler(ps portssvc.PreferenceSvcFacade) *preferenceHandler {
	return &preferenceHandler{
		prefService: ps,
	}
}

// registerPreferenceRoutes registers routes related to user preferences.
func registerPreferenceRoutes(rg *gin.RouterGroup, prefService portssvc.PreferenceSvcFacade) {
	h := newPreferenceHandler(prefService)

	prefs := rg.Group("/preferences")
	{
		prefs.GET("", h.listPreferences)
		prefs.GET("/:key", h.getPreference)
		prefs.PUT("/:key", h.savePreference)
		prefs.DELETE("/:key", h.deletePreference)
	}
}

// listPreferences godoc
// @Summary List the caller's preferences
// @Tags preferences
// @Produce  json
// @Success 200 {array} dto.PreferenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list preferences"
// @Security BearerAuth
// @Router /preferences [get]
func (h *preferenceHandler) listPreferences(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	prefs, err := h.prefService.ListPreferences(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to list preferences from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list preferences"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponses(prefs))
}

// getPreference godoc
// @Summary Get one of the caller's preferences
// @Tags preferences
// @Produce  json
// @Param   key path string true "Preference key"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Preference not found"
// @Failure 500 {object} map[string]string "Failed to retrieve preference"
// @Security BearerAuth
// @Router /preferences/{key} [get]
func (h *preferenceHandler) getPreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	key := c.Param("key")

	pref, err := h.prefService.GetPreference(c.Request.Context(), userID, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preference not found"})
		} else {
			logger.Error("Failed to get preference from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve preference"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// savePreference godoc
// @Summary Save one of the caller's preferences
// @Description Creates the preference or overwrites its value
// @Tags preferences
// @Accept  json
// @Produce  json
// @Param   key path string true "Preference key"
// @Param   preference body dto.SavePreferenceRequest true "Preference value"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to save preference"
// @Security BearerAuth
// @Router /preferences/{key} [put]
func (h *preferenceHandler) savePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	key := c.Param("key")

	var req dto.SavePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SavePreference", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pref, err := h.prefService.SavePreference(c.Request.Context(), userID, key, req.Value)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to save preference in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save preference"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToPreferenceResponse(pref))
}

// deletePreference godoc
// @Summary Delete one of the caller's preferences
// @Tags preferences
// @Produce  json
// @Param   key path string true "Preference key"
// @Success 204 "Deleted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Preference not found"
// @Failure 500 {object} map[string]string "Failed to delete preference"
// @Security BearerAuth
// @Router /preferences/{key} [delete]
func (h *preferenceHandler) deletePreference(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	key := c.Param("key")

	if err := h.prefService.DeletePreference(c.Request.Context(), userID, key); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Preference not found"})
		} else {
			logger.Error("Failed to delete preference in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete preference"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
