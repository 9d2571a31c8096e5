package models

import "math"

// Coordinates is an optional lat/lng pair attached to an aid request
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// LatLng returns the pair when both components are present and finite
func (c *Coordinates) LatLng() (lat, lng float64, ok bool) {
	if c == nil || c.Lat == nil || c.Lng == nil {
		return 0, 0, false
	}
	if !finite(*c.Lat) || !finite(*c.Lng) {
		return 0, 0, false
	}
	return *c.Lat, *c.Lng, true
}

// LocationText is the human-readable place a volunteer operates in
type LocationText struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// GeoJSONPoint is a GeoJSON point, coordinates ordered [longitude, latitude]
type GeoJSONPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// NewGeoJSONPoint builds a point from latitude and longitude
func NewGeoJSONPoint(lat, lng float64) *GeoJSONPoint {
	return &GeoJSONPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

// Valid reports whether the point carries exactly two finite coordinates in range
func (p *GeoJSONPoint) Valid() bool {
	if p == nil || len(p.Coordinates) != 2 {
		return false
	}
	lng, lat := p.Coordinates[0], p.Coordinates[1]
	if !finite(lng) || !finite(lat) {
		return false
	}
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// Latitude returns the second coordinate
func (p *GeoJSONPoint) Latitude() float64 {
	return p.Coordinates[1]
}

// Longitude returns the first coordinate
func (p *GeoJSONPoint) Longitude() float64 {
	return p.Coordinates[0]
}

// BoundingBox is a lat/lng rectangle used to filter volunteers
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
