package recommendation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRating(t *testing.T) {
	tests := []struct {
		name     string
		rating   *float64
		expected float64
	}{
		{name: "no reviews defaults to neutral", rating: nil, expected: 0.5},
		{name: "zero stars", rating: ratingPtr(0), expected: 0.0},
		{name: "midpoint", rating: ratingPtr(2.5), expected: 0.5},
		{name: "perfect rating", rating: ratingPtr(5.0), expected: 1.0},
		{name: "above ceiling clamps", rating: ratingPtr(5.5), expected: 1.0},
		{name: "typical rating", rating: ratingPtr(4.8), expected: 0.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeRating(tt.rating), 1e-9)
		})
	}
}

func TestNormalizeDistance(t *testing.T) {
	tests := []struct {
		name     string
		miles    float64
		expected float64
	}{
		{name: "on site", miles: 0, expected: 1.0},
		{name: "at the horizon", miles: 50, expected: 0.0},
		{name: "beyond the horizon clamps", miles: 100, expected: 0.0},
		{name: "close by", miles: 3.5, expected: 0.93},
		{name: "mid range", miles: 8, expected: 0.84},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NormalizeDistance(tt.miles), 1e-9)
		})
	}
}
