package routes

import (
	"net/http"

	"smartscheduler/handlers"
	"smartscheduler/utils"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers job recommendation endpoints.
func RegisterJobRoutes(r *gin.Engine, rh *handlers.RecommendationHandler) {
	api := r.Group("/api/jobs")
	{
		api.GET("/:jobId/recommendations", rh.GetRecommendations)
	}
}

// RegisterContractorRoutes registers contractor availability endpoints.
func RegisterContractorRoutes(r *gin.Engine, ah *handlers.AvailabilityHandler) {
	api := r.Group("/api/contractors")
	{
		api.GET("/:id/availability", ah.CheckAvailability)
		api.GET("/:id/timeslots", ah.GetTimeSlots)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}
