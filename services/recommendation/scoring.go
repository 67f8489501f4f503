package recommendation

import "fmt"

// Scoring weights. They must sum to 1.0.
const (
	AvailabilityWeight = 0.4
	RatingWeight       = 0.3
	DistanceWeight     = 0.3
)

// CalculateScore combines the availability, rating and distance scores into
// one weighted score. Each input must already be normalized to [0,1]; a
// value outside that range indicates a normalization bug upstream and is
// rejected rather than clamped. No rounding is applied here.
func CalculateScore(availabilityScore, ratingScore, distanceScore float64) (float64, error) {
	if err := checkScoreRange("availability score", availabilityScore); err != nil {
		return 0, err
	}
	if err := checkScoreRange("rating score", ratingScore); err != nil {
		return 0, err
	}
	if err := checkScoreRange("distance score", distanceScore); err != nil {
		return 0, err
	}
	return AvailabilityWeight*availabilityScore + RatingWeight*ratingScore + DistanceWeight*distanceScore, nil
}

func checkScoreRange(name string, v float64) error {
	if v < 0 || v > 1 {
		return NewInvalidArgumentError(fmt.Sprintf("%s must be within [0, 1], got %v", name, v))
	}
	return nil
}
