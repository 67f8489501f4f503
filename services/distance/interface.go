package distance

import "context"

// Provider supplies road distance and travel time between two coordinates.
// Implementations may degrade to an approximate great-circle estimate; the
// caller accepts whatever value comes back.
type Provider interface {
	// GetDistance returns the distance in miles.
	GetDistance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error)
	// GetTravelTime returns the travel time in minutes.
	GetTravelTime(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error)
}
