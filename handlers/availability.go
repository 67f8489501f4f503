package handlers

import (
	"net/http"
	"strconv"
	"time"

	"smartscheduler/services/recommendation"
	"smartscheduler/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes contractor availability checks over HTTP.
type AvailabilityHandler struct {
	Engine recommendation.AvailabilityEngine
	Logger *zap.Logger
}

// NewAvailabilityHandler creates a new AvailabilityHandler.
func NewAvailabilityHandler(engine recommendation.AvailabilityEngine, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Engine: engine, Logger: logger}
}

// CheckAvailability reports whether a contractor can take a window starting
// at ?start (RFC3339) for ?duration hours plus ?travel minutes.
func (h *AvailabilityHandler) CheckAvailability(c *gin.Context) {
	contractorID := c.Param("id")

	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "start must be an RFC3339 timestamp")
		return
	}
	duration, err := strconv.ParseFloat(c.Query("duration"), 64)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "duration must be a number of hours")
		return
	}
	travel := 0.0
	if raw := c.Query("travel"); raw != "" {
		travel, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", "travel must be a number of minutes")
			return
		}
	}

	available, err := h.Engine.IsAvailable(contractorID, start, duration, travel)
	if err != nil {
		switch {
		case recommendation.IsInvalidArgument(err):
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		case recommendation.IsNotFound(err):
			utils.JSONError(c, http.StatusNotFound, "Not found", err.Error())
		default:
			h.Logger.Error("availability check failed",
				zap.String("contractorId", contractorID), zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to check availability", "Please try again later")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"contractorId": contractorID, "available": available})
}

// GetTimeSlots returns a contractor's open one-hour slots on ?date (YYYY-MM-DD).
func (h *AvailabilityHandler) GetTimeSlots(c *gin.Context) {
	contractorID := c.Param("id")

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date must be formatted as YYYY-MM-DD")
		return
	}

	slots, err := h.Engine.GetAvailableTimeSlots(contractorID, date)
	if err != nil {
		h.Logger.Error("time slot lookup failed",
			zap.String("contractorId", contractorID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to compute time slots", "Please try again later")
		return
	}

	c.JSON(http.StatusOK, gin.H{"contractorId": contractorID, "slots": slots})
}
