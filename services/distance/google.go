package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"smartscheduler/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	defaultMatrixBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"
	defaultCacheTTL      = 24 * time.Hour

	metersPerMile = 1609.344

	// Average speed used to estimate travel time when the provider degrades
	// to the great-circle fallback.
	fallbackSpeedMph = 30.0
)

// measurement is the cached unit of a distance lookup.
type measurement struct {
	Miles   float64 `json:"miles"`
	Minutes float64 `json:"minutes"`
}

// matrixResponse covers the fields we read from the Google Distance Matrix API.
type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"` // meters
			} `json:"distance"`
			Duration struct {
				Value float64 `json:"value"` // seconds
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// GoogleMatrixProvider implements Provider against the Google Distance
// Matrix API, caching results in Redis and falling back to a haversine
// estimate when the API degrades.
type GoogleMatrixProvider struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Cache      *redis.Client
	CacheTTL   time.Duration
}

// NewGoogleMatrixProvider creates a provider with the given API key and cache.
func NewGoogleMatrixProvider(apiKey string, cache *redis.Client, cacheTTL time.Duration) *GoogleMatrixProvider {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &GoogleMatrixProvider{
		APIKey:     apiKey,
		BaseURL:    defaultMatrixBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
		Cache:      cache,
		CacheTTL:   cacheTTL,
	}
}

// GetDistance returns the road distance in miles.
func (p *GoogleMatrixProvider) GetDistance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	m := p.lookup(ctx, fromLat, fromLng, toLat, toLng)
	return m.Miles, nil
}

// GetTravelTime returns the travel time in minutes.
func (p *GoogleMatrixProvider) GetTravelTime(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (float64, error) {
	m := p.lookup(ctx, fromLat, fromLng, toLat, toLng)
	return m.Minutes, nil
}

// lookup serves a measurement from cache when possible, otherwise queries
// the matrix API. Cache failures are logged and bypassed; API failures
// degrade to the haversine fallback. The caller always gets a usable value.
func (p *GoogleMatrixProvider) lookup(ctx context.Context, fromLat, fromLng, toLat, toLng float64) measurement {
	logger := utils.GetLogger()
	key := fmt.Sprintf("distance:%.5f,%.5f:%.5f,%.5f", fromLat, fromLng, toLat, toLng)

	if p.Cache != nil {
		cached, err := p.Cache.Get(ctx, key).Result()
		if err == nil && cached != "" {
			var m measurement
			if err := json.Unmarshal([]byte(cached), &m); err == nil {
				return m
			}
		} else if err != nil && err != redis.Nil {
			logger.Warn("distance cache read failed, bypassing cache", zap.Error(err))
		}
	}

	m, err := p.fetch(ctx, fromLat, fromLng, toLat, toLng)
	if err != nil {
		logger.Warn("distance provider degraded, using great-circle estimate",
			zap.Float64("fromLat", fromLat), zap.Float64("fromLng", fromLng),
			zap.Float64("toLat", toLat), zap.Float64("toLng", toLng),
			zap.Error(err))
		m = fallbackMeasurement(fromLat, fromLng, toLat, toLng)
	}

	if p.Cache != nil {
		if data, err := json.Marshal(m); err == nil {
			if err := p.Cache.Set(ctx, key, data, p.CacheTTL).Err(); err != nil {
				logger.Warn("distance cache write failed", zap.Error(err))
			}
		}
	}
	return m
}

// fetch queries the Google Distance Matrix API for a single origin/destination pair.
func (p *GoogleMatrixProvider) fetch(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (measurement, error) {
	if p.APIKey == "" {
		return measurement{}, fmt.Errorf("distance matrix API key is not configured")
	}

	params := url.Values{}
	params.Set("origins", fmt.Sprintf("%f,%f", fromLat, fromLng))
	params.Set("destinations", fmt.Sprintf("%f,%f", toLat, toLng))
	params.Set("key", p.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return measurement{}, fmt.Errorf("failed to build distance matrix request: %w", err)
	}

	resp, err := p.HTTPClient.Do(req)
	if err != nil {
		return measurement{}, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return measurement{}, fmt.Errorf("distance matrix returned status %d", resp.StatusCode)
	}

	var matrix matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&matrix); err != nil {
		return measurement{}, fmt.Errorf("failed to decode distance matrix response: %w", err)
	}
	if matrix.Status != "OK" || len(matrix.Rows) == 0 || len(matrix.Rows[0].Elements) == 0 {
		return measurement{}, fmt.Errorf("distance matrix returned status %q", matrix.Status)
	}
	element := matrix.Rows[0].Elements[0]
	if element.Status != "OK" {
		return measurement{}, fmt.Errorf("distance matrix element status %q", element.Status)
	}

	return measurement{
		Miles:   element.Distance.Value / metersPerMile,
		Minutes: element.Duration.Value / 60,
	}, nil
}

// fallbackMeasurement estimates the pair from the great-circle distance.
func fallbackMeasurement(fromLat, fromLng, toLat, toLng float64) measurement {
	miles := haversineMiles(fromLat, fromLng, toLat, toLng)
	return measurement{
		Miles:   miles,
		Minutes: miles / fallbackSpeedMph * 60,
	}
}

// haversineMiles calculates the great-circle distance (in miles) between two lat/lon points.
func haversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371
	const milesPerKm = 0.621371

	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c * milesPerKm
}
