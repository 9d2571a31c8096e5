package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/piresc/reliefhub/internal/pkg/models"
)

const (
	earthRadiusKm = 6371.0
	// KmPerDegree approximates one degree of latitude in kilometers
	KmPerDegree = 111.32
	// GeohashPrecision is the precision stored on volunteers, about 1.2 km cells
	GeohashPrecision = 6
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// EncodeGeohash converts a point to a geohash string
func EncodeGeohash(lat, lng float64, precision uint) string {
	return geohash.EncodeWithPrecision(lat, lng, precision)
}

// HaversineKm returns the great-circle distance between two points in kilometers.
// NaN inputs produce NaN.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := lat1 * math.Pi / 180.0
	rLat2 := lat2 * math.Pi / 180.0
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// PlanarDistance is the Euclidean distance over raw degrees. It is only good
// for ordering nearby points.
func PlanarDistance(p1, p2 GeoPoint) float64 {
	return math.Hypot(p1.Latitude-p2.Latitude, p1.Longitude-p2.Longitude)
}

// BoundingBoxAround returns the square of half-side radiusKm around a point,
// converting kilometers to degrees with KmPerDegree on both axes
func BoundingBoxAround(lat, lng, radiusKm float64) models.BoundingBox {
	delta := radiusKm / KmPerDegree
	return models.BoundingBox{
		MinLat: lat - delta,
		MaxLat: lat + delta,
		MinLng: lng - delta,
		MaxLng: lng + delta,
	}
}
