package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/match/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func pointVolunteer(id string, lat, lng float64) *models.Volunteer {
	return &models.Volunteer{ID: id, Availability: true, Location: models.NewGeoJSONPoint(lat, lng)}
}

func namedVolunteer(id, place string) *models.Volunteer {
	return &models.Volunteer{ID: id, Availability: true, LocationText: models.LocationText{Name: place}}
}

func ids(candidates []*models.Candidate) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.Volunteer.ID)
	}
	return out
}

func newSelector(t *testing.T) (*MatchUC, *mocks.MockVolunteerRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockVolunteerRepo(ctrl)
	return NewMatchUC(&models.Config{}, repo, mocks.NewMockNotifier(ctrl)), repo
}

func TestFindCandidates_EmptyAddress(t *testing.T) {
	uc, _ := newSelector(t)

	candidates, err := uc.FindCandidates(context.Background(), models.TargetLocation{Address: "  "})

	assert.Nil(t, candidates)
	assert.ErrorIs(t, err, models.ErrNoLocation)
}

func TestFindCandidates_NoVolunteers(t *testing.T) {
	uc, repo := newSelector(t)
	repo.EXPECT().ListAvailable(gomock.Any()).Return(nil, nil)

	candidates, err := uc.FindCandidates(context.Background(), models.TargetLocation{Address: "Bandra"})

	require.NoError(t, err)
	assert.NotNil(t, candidates)
	assert.Empty(t, candidates)
}

func TestFindCandidates_RepoError(t *testing.T) {
	uc, repo := newSelector(t)
	repo.EXPECT().ListAvailable(gomock.Any()).Return(nil, errors.New("db down"))

	_, err := uc.FindCandidates(context.Background(), models.TargetLocation{Address: "Bandra"})

	assert.EqualError(t, err, "db down")
}

func TestFindCandidates_FiveNearestByDistance(t *testing.T) {
	uc, repo := newSelector(t)

	// distances 1..6 hundredths of a degree, listed out of order; v6 also matches by name
	volunteers := []*models.Volunteer{
		pointVolunteer("v4", 0.04, 0),
		pointVolunteer("v6", 0.06, 0),
		pointVolunteer("v1", 0.01, 0),
		pointVolunteer("v3", 0, 0.03),
		pointVolunteer("v5", 0.05, 0),
		pointVolunteer("v2", 0.02, 0),
	}
	volunteers[1].LocationText.Name = "Bandra"
	repo.EXPECT().ListAvailable(gomock.Any()).Return(volunteers, nil)

	candidates, err := uc.FindCandidates(context.Background(), models.TargetLocation{
		Address: "Bandra", Lat: floatPtr(0), Lng: floatPtr(0),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3", "v4", "v5"}, ids(candidates))
	for i := 1; i < len(candidates); i++ {
		assert.True(t, candidates[i-1].Distance <= candidates[i].Distance)
		assert.True(t, candidates[i].DistanceKnown)
	}
}

func TestFindCandidates_NameFallbackWithoutPoints(t *testing.T) {
	uc, repo := newSelector(t)

	volunteers := []*models.Volunteer{
		namedVolunteer("v1", "Bandra West"),
		namedVolunteer("v2", "Andheri"),
		namedVolunteer("v3", "bandra"),
		namedVolunteer("v4", ""),
		namedVolunteer("v5", "West"),
	}
	repo.EXPECT().ListAvailable(gomock.Any()).Return(volunteers, nil)

	candidates, err := uc.FindCandidates(context.Background(), models.TargetLocation{
		Address: "Bandra West", Lat: floatPtr(19.05), Lng: floatPtr(72.83),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v3", "v5"}, ids(candidates))
	for _, c := range candidates {
		assert.False(t, c.DistanceKnown)
		assert.Equal(t, 0.0, c.Distance)
	}
}

func TestFindCandidates_MixedDeduplicates(t *testing.T) {
	uc, repo := newSelector(t)

	near := pointVolunteer("v1", 19.05, 72.83)
	near.LocationText.Name = "Bandra"
	volunteers := []*models.Volunteer{
		near,
		namedVolunteer("v2", "Bandra"),
		{ID: "v3", Location: &models.GeoJSONPoint{Type: "Point", Coordinates: []float64{72.8}}, LocationText: models.LocationText{Name: "Bandra East"}},
	}
	repo.EXPECT().ListAvailable(gomock.Any()).Return(volunteers, nil)

	candidates, err := uc.FindCandidates(context.Background(), models.TargetLocation{
		Address: "Bandra", Lat: floatPtr(19.0), Lng: floatPtr(72.8),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"v1", "v2", "v3"}, ids(candidates))
	assert.True(t, candidates[0].DistanceKnown)
	assert.False(t, candidates[2].DistanceKnown, "malformed point falls back to the name match")
}

func TestFindCandidates_CapsResult(t *testing.T) {
	uc, repo := newSelector(t)

	volunteers := make([]*models.Volunteer, 0, 12)
	for i := 0; i < 12; i++ {
		volunteers = append(volunteers, namedVolunteer(fmt.Sprintf("v%02d", i), "Kurla"))
	}
	repo.EXPECT().ListAvailable(gomock.Any()).Return(volunteers, nil)

	candidates, err := uc.FindCandidates(context.Background(), models.TargetLocation{Address: "kurla"})

	require.NoError(t, err)
	assert.Len(t, candidates, 10)
	assert.Equal(t, "v00", candidates[0].Volunteer.ID)
	assert.Equal(t, "v09", candidates[9].Volunteer.ID)
}
