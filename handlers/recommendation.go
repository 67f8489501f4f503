package handlers

import (
	"net/http"

	"smartscheduler/services/recommendation"
	"smartscheduler/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RecommendationHandler exposes the recommendation engine over HTTP.
type RecommendationHandler struct {
	Service recommendation.RecommendationService
	Logger  *zap.Logger
}

// NewRecommendationHandler creates a new RecommendationHandler.
func NewRecommendationHandler(svc recommendation.RecommendationService, logger *zap.Logger) *RecommendationHandler {
	return &RecommendationHandler{Service: svc, Logger: logger}
}

// GetRecommendations returns the ranked top contractors for a job.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	requestID := uuid.New().String()
	jobID := c.Param("jobId")
	dispatcherID := c.Query("dispatcherId")
	listOnly := c.Query("listOnly") == "true"

	h.Logger.Info("recommendation request",
		zap.String("requestId", requestID),
		zap.String("jobId", jobID),
		zap.String("dispatcherId", dispatcherID),
		zap.Bool("listOnly", listOnly))

	result, err := h.Service.GetRecommendations(c.Request.Context(), jobID, dispatcherID, listOnly)
	if err != nil {
		switch {
		case recommendation.IsInvalidArgument(err):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		case recommendation.IsNotFound(err):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		default:
			h.Logger.Error("recommendation request failed",
				zap.String("requestId", requestID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to compute recommendations", "Please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
