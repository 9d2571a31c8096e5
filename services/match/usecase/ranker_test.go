package usecase

import (
	"testing"

	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func candidate(id string, rating, response, distance float64, known bool) *models.Candidate {
	return &models.Candidate{
		Volunteer:     &models.Volunteer{ID: id, AverageRating: rating, ResponseRate: response},
		Distance:      distance,
		DistanceKnown: known,
	}
}

func TestRankCandidates(t *testing.T) {
	testCases := []struct {
		name       string
		candidates []*models.Candidate
		want       []string
	}{
		{
			name: "close ratings fall through to distance",
			candidates: []*models.Candidate{
				candidate("A", 4.9, 0, 10, true),
				candidate("B", 4.6, 0, 1, true),
			},
			want: []string{"B", "A"},
		},
		{
			name: "rating gap above band wins over distance",
			candidates: []*models.Candidate{
				candidate("B", 4.0, 0.9, 1, true),
				candidate("A", 4.9, 0, 10, true),
			},
			want: []string{"A", "B"},
		},
		{
			name: "response rate decides before distance",
			candidates: []*models.Candidate{
				candidate("A", 4.0, 0.2, 1, true),
				candidate("B", 4.2, 0.5, 9, true),
			},
			want: []string{"B", "A"},
		},
		{
			name: "small response gap is a tie",
			candidates: []*models.Candidate{
				candidate("A", 4.0, 0.55, 5, true),
				candidate("B", 4.0, 0.5, 2, true),
			},
			want: []string{"B", "A"},
		},
		{
			name: "unknown distance counts as zero",
			candidates: []*models.Candidate{
				candidate("A", 3.0, 0, 0.2, true),
				candidate("B", 3.0, 0, 7, false),
			},
			want: []string{"B", "A"},
		},
		{
			name: "ties keep selection order",
			candidates: []*models.Candidate{
				candidate("A", 0, 0, 0, false),
				candidate("B", 0, 0, 0, false),
				candidate("C", 0, 0, 0, false),
			},
			want: []string{"A", "B", "C"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			RankCandidates(tc.candidates)
			assert.Equal(t, tc.want, ids(tc.candidates))
		})
	}
}
