package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx/types"
	"github.com/lib/pq"
)

// Volunteer represents a registered helper
type Volunteer struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email,omitempty"`
	Phone              string             `json:"phone"`
	PrimaryLocation    string             `json:"primaryLocation,omitempty"`
	AdditionalLocation string             `json:"additionalLocation,omitempty"`
	LocationText       LocationText       `json:"locationText"`
	Location           *GeoJSONPoint      `json:"location,omitempty"`
	Geohash            string             `json:"geohash,omitempty"`
	Skillset           []string           `json:"skillset"`
	Availability       bool               `json:"availability"`
	AverageRating      float64            `json:"averageRating"`
	TotalRatings       int                `json:"totalRatings"`
	SkillRatings       map[string]float64 `json:"skillRatings"`
	ResponseRate       float64            `json:"responseRate"`
	CompletedAids      int                `json:"completedAids"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// VolunteerDTO flattens Volunteer for database operations
type VolunteerDTO struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Email              string         `db:"email"`
	Phone              string         `db:"phone"`
	PrimaryLocation    string         `db:"primary_location"`
	AdditionalLocation string         `db:"additional_location"`
	LocationName       string         `db:"location_name"`
	LocationAddress    string         `db:"location_address"`
	Longitude          *float64       `db:"longitude"`
	Latitude           *float64       `db:"latitude"`
	Geohash            string         `db:"geohash"`
	Skillset           pq.StringArray `db:"skillset"`
	Availability       bool           `db:"availability"`
	AverageRating      float64        `db:"average_rating"`
	TotalRatings       int            `db:"total_ratings"`
	SkillRatings       types.JSONText `db:"skill_ratings"`
	ResponseRate       float64        `db:"response_rate"`
	CompletedAids      int            `db:"completed_aids"`
	CreatedAt          time.Time      `db:"created_at"`
	UpdatedAt          time.Time      `db:"updated_at"`
}

// ToDTO converts a Volunteer to a VolunteerDTO
func (v *Volunteer) ToDTO() (*VolunteerDTO, error) {
	ratings := v.SkillRatings
	if ratings == nil {
		ratings = map[string]float64{}
	}
	raw, err := json.Marshal(ratings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skill ratings: %w", err)
	}

	skillset := v.Skillset
	if skillset == nil {
		skillset = []string{}
	}

	dto := &VolunteerDTO{
		ID:                 v.ID,
		Name:               v.Name,
		Email:              v.Email,
		Phone:              v.Phone,
		PrimaryLocation:    v.PrimaryLocation,
		AdditionalLocation: v.AdditionalLocation,
		LocationName:       v.LocationText.Name,
		LocationAddress:    v.LocationText.Address,
		Geohash:            v.Geohash,
		Skillset:           pq.StringArray(skillset),
		Availability:       v.Availability,
		AverageRating:      v.AverageRating,
		TotalRatings:       v.TotalRatings,
		SkillRatings:       types.JSONText(raw),
		ResponseRate:       v.ResponseRate,
		CompletedAids:      v.CompletedAids,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
	if v.Location.Valid() {
		lng, lat := v.Location.Longitude(), v.Location.Latitude()
		dto.Longitude, dto.Latitude = &lng, &lat
	}
	return dto, nil
}

// ToVolunteer converts a VolunteerDTO back to a Volunteer
func (d *VolunteerDTO) ToVolunteer() (*Volunteer, error) {
	ratings := map[string]float64{}
	if len(d.SkillRatings) > 0 {
		if err := d.SkillRatings.Unmarshal(&ratings); err != nil {
			return nil, fmt.Errorf("failed to decode skill ratings: %w", err)
		}
	}

	skillset := []string(d.Skillset)
	if skillset == nil {
		skillset = []string{}
	}

	v := &Volunteer{
		ID:                 d.ID,
		Name:               d.Name,
		Email:              d.Email,
		Phone:              d.Phone,
		PrimaryLocation:    d.PrimaryLocation,
		AdditionalLocation: d.AdditionalLocation,
		LocationText:       LocationText{Name: d.LocationName, Address: d.LocationAddress},
		Geohash:            d.Geohash,
		Skillset:           skillset,
		Availability:       d.Availability,
		AverageRating:      d.AverageRating,
		TotalRatings:       d.TotalRatings,
		SkillRatings:       ratings,
		ResponseRate:       d.ResponseRate,
		CompletedAids:      d.CompletedAids,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
	if d.Latitude != nil && d.Longitude != nil {
		v.Location = NewGeoJSONPoint(*d.Latitude, *d.Longitude)
	}
	return v, nil
}

// VolunteerRequest is the body used to register or update a volunteer
type VolunteerRequest struct {
	Name               string        `json:"name" validate:"required,personname"`
	Email              string        `json:"email" validate:"omitempty,email"`
	Phone              string        `json:"phone" validate:"required,phone"`
	PrimaryLocation    string        `json:"primaryLocation"`
	AdditionalLocation string        `json:"additionalLocation"`
	LocationText       *LocationText `json:"locationText"`
	Location           *GeoJSONPoint `json:"location"`
	Skillset           []string      `json:"skillset"`
	Availability       *bool         `json:"availability"`
}

// VolunteerQuery filters the volunteer listing. Nil fields were not supplied;
// the geo filter applies only when all three are set.
type VolunteerQuery struct {
	Lat    *float64
	Lng    *float64
	Radius *float64
}

// VolunteerSummary is the subset of a volunteer echoed back by notify-volunteer
type VolunteerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// RatingSummary is the aggregate derived from a volunteer's feedback
type RatingSummary struct {
	AverageRating float64            `json:"averageRating"`
	TotalRatings  int                `json:"totalRatings"`
	SkillRatings  map[string]float64 `json:"skillRatings"`
}
