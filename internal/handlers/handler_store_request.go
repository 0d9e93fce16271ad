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

// storeRequestHandler handles HTTP requests related to store transfer requests.
type storeRequestHandler struct {
	srService portssvc.StoreRequestSvcFacade
}

func newStoreRequestHandler(ss portssvc.StoreRequestSvcFacade) *storeRequestHandler {
	return &storeRequestHandler{
		srService: ss,
	}
}

// registerStoreRequestRoutes registers routes related to store requests.
func registerStoreRequestRoutes(rg *gin.RouterGroup, srService portssvc.StoreRequestSvcFacade) {
	h := newStoreRequestHandler(srService)

	requests := rg.Group("/store-requests")
	{
		requests.POST("", h.createStoreRequest)
		requests.GET("", h.listStoreRequests)
		requests.GET("/:storeRequestID", h.getStoreRequestByID)
		requests.PATCH("/:storeRequestID/status", h.updateStoreRequestStatus)
	}
}

// createStoreRequest godoc
// @Summary Create a store transfer request
// @Description Raises a request to move stock between two distinct stores
// @Tags store-requests
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateStoreRequestRequest true "Store request details"
// @Success 201 {object} dto.StoreRequestResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create store request"
// @Security BearerAuth
// @Router /store-requests [post]
func (h *storeRequestHandler) createStoreRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateStoreRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateStoreRequest", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	logger.Info("Received request to create store request",
		slog.String("from_store_id", req.FromStoreID),
		slog.String("to_store_id", req.ToStoreID))

	created, err := h.srService.CreateStoreRequest(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) ||
			errors.Is(err, apperrors.ErrDateOutOfWindow) ||
			errors.Is(err, apperrors.ErrYearClosed) {
			logger.Warn("Validation error creating store request", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create store request in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store request"})
		}
		return
	}

	logger.Info("Store request created successfully", slog.String("store_request_id", created.StoreRequestID))
	c.JSON(http.StatusCreated, dto.ToStoreRequestResponse(created))
}

// getStoreRequestByID godoc
// @Summary Get a store request by ID
// @Tags store-requests
// @Produce  json
// @Param   storeRequestID path string true "Store Request ID"
// @Success 200 {object} dto.StoreRequestResponse
// @Failure 404 {object} map[string]string "Store request not found"
// @Failure 500 {object} map[string]string "Failed to retrieve store request"
// @Security BearerAuth
// @Router /store-requests/{storeRequestID} [get]
func (h *storeRequestHandler) getStoreRequestByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeRequestID := c.Param("storeRequestID")

	sr, err := h.srService.GetStoreRequestByID(c.Request.Context(), storeRequestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Store request not found", slog.String("store_request_id", storeRequestID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Store request not found"})
		} else {
			logger.Error("Failed to get store request from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve store request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToStoreRequestResponse(sr))
}

// listStoreRequests godoc
// @Summary List store requests
// @Description Returns a token-paginated page of store requests, newest first
// @Tags store-requests
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListStoreRequestsResponse
// @Failure 400 {object} map[string]string "Invalid pagination token"
// @Failure 500 {object} map[string]string "Failed to list store requests"
// @Security BearerAuth
// @Router /store-requests [get]
func (h *storeRequestHandler) listStoreRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListStoreRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	page, err := h.srService.ListStoreRequests(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid pagination token", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list store requests from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list store requests"})
		}
		return
	}

	c.JSON(http.StatusOK, page)
}

// updateStoreRequestStatus godoc
// @Summary Transition a store request's status
// @Description Moves the request along PENDING, APPROVED, REJECTED, FULFILLED; invalid transitions are rejected
// @Tags store-requests
// @Accept  json
// @Produce  json
// @Param   storeRequestID path string true "Store Request ID"
// @Param   status body dto.UpdateStoreRequestStatusRequest true "Target status"
// @Success 204 "Status updated"
// @Failure 400 {object} map[string]string "Invalid transition"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Store request not found"
// @Failure 500 {object} map[string]string "Failed to update status"
// @Security BearerAuth
// @Router /store-requests/{storeRequestID}/status [patch]
func (h *storeRequestHandler) updateStoreRequestStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	storeRequestID := c.Param("storeRequestID")

	var req dto.UpdateStoreRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateStoreRequestStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	updaterUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Updater user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if err := h.srService.UpdateStoreRequestStatus(c.Request.Context(), storeRequestID, req, updaterUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Store request not found for status update", slog.String("store_request_id", storeRequestID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Store request not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Invalid status transition", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update store request status in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update status"})
		}
		return
	}

	logger.Info("Store request status updated", slog.String("store_request_id", storeRequestID), slog.String("status", string(req.Status)))
	c.Status(http.StatusNoContent)
}
