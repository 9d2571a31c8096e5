package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
)

// FindCandidates selects available volunteers for a target location. Volunteers
// with a point are ranked by planar distance when the target has coordinates;
// if that yields fewer than nearestK, volunteers whose location name overlaps
// the address are appended. The result holds at most maxCandidates entries.
func (u *MatchUC) FindCandidates(ctx context.Context, target models.TargetLocation) ([]*models.Candidate, error) {
	address := strings.TrimSpace(target.Address)
	if address == "" {
		return nil, models.ErrNoLocation
	}

	volunteers, err := u.volunteerRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}
	if len(volunteers) == 0 {
		return []*models.Candidate{}, nil
	}

	candidates := u.nearest(volunteers, target)
	nearestCount := len(candidates)

	if len(candidates) < u.nearestK {
		candidates = appendNameMatches(candidates, volunteers, address)
	}

	if len(candidates) > u.maxCandidates {
		candidates = candidates[:u.maxCandidates]
	}

	logger.Debug("Candidate selection finished",
		logger.String("address", address),
		logger.Int("available", len(volunteers)),
		logger.Int("by_distance", nearestCount),
		logger.Int("selected", len(candidates)))
	return candidates, nil
}

// nearest returns up to nearestK volunteers with a valid point, closest first
func (u *MatchUC) nearest(volunteers []*models.Volunteer, target models.TargetLocation) []*models.Candidate {
	if target.Lat == nil || target.Lng == nil {
		return []*models.Candidate{}
	}
	origin := utils.GeoPoint{Latitude: *target.Lat, Longitude: *target.Lng}

	candidates := make([]*models.Candidate, 0, len(volunteers))
	for _, v := range volunteers {
		if !v.Location.Valid() {
			continue
		}
		p := utils.GeoPoint{Latitude: v.Location.Latitude(), Longitude: v.Location.Longitude()}
		candidates = append(candidates, &models.Candidate{
			Volunteer:     v,
			Distance:      utils.PlanarDistance(origin, p),
			DistanceKnown: true,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	if len(candidates) > u.nearestK {
		candidates = candidates[:u.nearestK]
	}
	return candidates
}

// appendNameMatches adds volunteers whose location name contains the address
// or is contained by it, skipping ids already selected
func appendNameMatches(candidates []*models.Candidate, volunteers []*models.Volunteer, address string) []*models.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		seen[c.Volunteer.ID] = struct{}{}
	}

	needle := strings.ToLower(address)
	for _, v := range volunteers {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		name := strings.ToLower(strings.TrimSpace(v.LocationText.Name))
		if name == "" {
			continue
		}
		if strings.Contains(name, needle) || strings.Contains(needle, name) {
			candidates = append(candidates, &models.Candidate{Volunteer: v})
			seen[v.ID] = struct{}{}
		}
	}
	return candidates
}
