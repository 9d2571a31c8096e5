package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/reliefhub/internal/pkg/apperrors"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
)

// RegisterVolunteer stores a new volunteer with empty rating aggregates
func (u *VolunteerUC) RegisterVolunteer(ctx context.Context, req *models.VolunteerRequest) (*models.Volunteer, error) {
	now := time.Now().UTC()
	v := &models.Volunteer{
		ID:           uuid.New().String(),
		Availability: true,
		SkillRatings: map[string]float64{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := applyProfile(v, req); err != nil {
		return nil, err
	}

	if err := u.volunteerRepo.Create(ctx, v); err != nil {
		return nil, err
	}

	logger.Info("Volunteer registered",
		logger.String("volunteer_id", v.ID),
		logger.Bool("has_point", v.Location != nil))
	return v, nil
}

// ListVolunteers returns all volunteers, or only those inside the square of
// half-side radius km around lat/lng when all three are given
func (u *VolunteerUC) ListVolunteers(ctx context.Context, query *models.VolunteerQuery) ([]*models.Volunteer, error) {
	var box *models.BoundingBox
	if query != nil && query.Lat != nil && query.Lng != nil && query.Radius != nil {
		lat, lng, radius := *query.Lat, *query.Lng, *query.Radius
		if math.IsNaN(lat) || math.IsNaN(lng) || math.IsNaN(radius) || math.IsInf(radius, 0) {
			return nil, apperrors.Validation("lat", "coordinates and radius must be numbers")
		}
		if radius < 0 {
			return nil, apperrors.Validation("radius", "must not be negative")
		}
		b := utils.BoundingBoxAround(lat, lng, radius)
		box = &b
	}

	return u.volunteerRepo.List(ctx, box)
}

// GetVolunteer returns a volunteer by id
func (u *VolunteerUC) GetVolunteer(ctx context.Context, id string) (*models.Volunteer, error) {
	return u.volunteerRepo.GetByID(ctx, id)
}

// UpdateVolunteer replaces the profile of a volunteer. Rating, response and
// completion aggregates are kept.
func (u *VolunteerUC) UpdateVolunteer(ctx context.Context, id string, req *models.VolunteerRequest) (*models.Volunteer, error) {
	v, err := u.volunteerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	v.Email, v.PrimaryLocation, v.AdditionalLocation = "", "", ""
	v.LocationText = models.LocationText{}
	v.Location, v.Geohash = nil, ""
	v.Availability = true
	if err := applyProfile(v, req); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now().UTC()

	if err := u.volunteerRepo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DeleteVolunteer removes a volunteer
func (u *VolunteerUC) DeleteVolunteer(ctx context.Context, id string) error {
	if err := u.volunteerRepo.Delete(ctx, id); err != nil {
		return err
	}
	logger.Info("Volunteer deleted", logger.String("volunteer_id", id))
	return nil
}

// applyProfile copies the request onto v. A point is kept only when it is a
// complete, in-range pair; the geohash follows the point.
func applyProfile(v *models.Volunteer, req *models.VolunteerRequest) error {
	v.Name = strings.TrimSpace(req.Name)
	v.Email = strings.TrimSpace(req.Email)
	v.Phone = strings.TrimSpace(req.Phone)
	v.PrimaryLocation = strings.TrimSpace(req.PrimaryLocation)
	v.AdditionalLocation = strings.TrimSpace(req.AdditionalLocation)

	v.LocationText = models.LocationText{Name: v.PrimaryLocation, Address: v.PrimaryLocation}
	if req.LocationText != nil {
		if name := strings.TrimSpace(req.LocationText.Name); name != "" {
			v.LocationText.Name = name
		}
		if address := strings.TrimSpace(req.LocationText.Address); address != "" {
			v.LocationText.Address = address
		}
	}

	if req.Location != nil {
		if !req.Location.Valid() {
			return apperrors.Validation("location", "must be a point with longitude and latitude")
		}
		v.Location = models.NewGeoJSONPoint(req.Location.Latitude(), req.Location.Longitude())
		v.Geohash = utils.EncodeGeohash(v.Location.Latitude(), v.Location.Longitude(), utils.GeohashPrecision)
	}

	v.Skillset = normalizeSkills(req.Skillset)
	if req.Availability != nil {
		v.Availability = *req.Availability
	}
	return nil
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
