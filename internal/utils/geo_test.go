package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		expected               float64
		delta                  float64
	}{
		{"same point", 28.6139, 77.2090, 28.6139, 77.2090, 0, 1e-9},
		{"delhi to mumbai", 28.6139, 77.2090, 19.0760, 72.8777, 1148.09, 0.5},
		{"one degree latitude", 0, 0, 1, 0, 111.19, 0.05},
		{"antipodal", 0, 0, 0, 180, math.Pi * 6371, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := HaversineKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.expected, d, tt.delta)
			assert.InDelta(t, d, HaversineKm(tt.lat2, tt.lon2, tt.lat1, tt.lon1), 1e-9)
		})
	}
}

func TestHaversineKm_NaN(t *testing.T) {
	assert.True(t, math.IsNaN(HaversineKm(math.NaN(), 0, 1, 1)))
}

func TestPlanarDistance(t *testing.T) {
	a := GeoPoint{Latitude: 0, Longitude: 0}
	b := GeoPoint{Latitude: 3, Longitude: 4}

	assert.Equal(t, 5.0, PlanarDistance(a, b))
	assert.Equal(t, PlanarDistance(a, b), PlanarDistance(b, a))
	assert.Equal(t, 0.0, PlanarDistance(a, a))
}

func TestBoundingBoxAround(t *testing.T) {
	box := BoundingBoxAround(10, 20, KmPerDegree)

	assert.InDelta(t, 9, box.MinLat, 1e-9)
	assert.InDelta(t, 11, box.MaxLat, 1e-9)
	assert.InDelta(t, 19, box.MinLng, 1e-9)
	assert.InDelta(t, 21, box.MaxLng, 1e-9)
}

func TestEncodeGeohash(t *testing.T) {
	hash := EncodeGeohash(28.6139, 77.2090, GeohashPrecision)

	assert.Len(t, hash, GeohashPrecision)
	assert.Equal(t, "ttnf", hash[:4])
}
