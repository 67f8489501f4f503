package recommendation

import (
	"context"
	"time"

	"smartscheduler/models"
)

// AvailabilityEngine decides whether a contractor can take a job window and
// computes open one-hour slots for a date.
type AvailabilityEngine interface {
	IsAvailable(contractorID string, desiredStart time.Time, durationHours, travelTimeMinutes float64) (bool, error)
	GetAvailableTimeSlots(contractorID string, date time.Time) ([]time.Time, error)
}

// RecommendationService produces the ranked top-N contractor list for a job.
type RecommendationService interface {
	GetRecommendations(ctx context.Context, jobID, dispatcherID string, contractorListOnly bool) (*models.RecommendationResult, error)
}
