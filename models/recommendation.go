package models

import "time"

// ScoreComponents holds the per-criterion scores before weighting.
// All values are in [0,1]; availability is exactly 0 or 1.
type ScoreComponents struct {
	Availability float64 `json:"availabilityScore"`
	Rating       float64 `json:"ratingScore"`
	Distance     float64 `json:"distanceScore"`
}

// Recommendation is a scored, ranked candidate returned to the dispatcher.
type Recommendation struct {
	ContractorID       string      `json:"contractorId"`
	Name               string      `json:"name"`
	Score              float64     `json:"score"`
	Rating             *float64    `json:"rating"`
	ReviewCount        int         `json:"reviewCount"`
	DistanceMiles      float64     `json:"distance"`
	TravelTimeMinutes  float64     `json:"travelTime"`
	AvailableTimeSlots []time.Time `json:"availableTimeSlots"`
}

// RecommendationResult is the orchestrator's output contract.
type RecommendationResult struct {
	Recommendations []Recommendation `json:"recommendations"`
	Message         string           `json:"message"`
}

const (
	MessageSuccess       = "Success"
	MessageNoContractors = "No available contractors"
)
