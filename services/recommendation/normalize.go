package recommendation

const (
	maxRating          = 5.0
	maxDistanceMiles   = 50.0
	defaultRatingScore = 0.5
)

// NormalizeRating converts a 5-star rating into a [0,1] score. A contractor
// with no reviews (nil rating) gets a neutral 0.5. Ratings above 5 clamp to
// 1.0 rather than erroring.
func NormalizeRating(rating *float64) float64 {
	if rating == nil {
		return defaultRatingScore
	}
	score := *rating / maxRating
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// NormalizeDistance converts a distance in miles into a [0,1] score. The
// score decays linearly and reaches exactly 0 at 50 miles and beyond.
func NormalizeDistance(miles float64) float64 {
	score := 1 - miles/maxDistanceMiles
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
