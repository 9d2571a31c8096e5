package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/lib/pq"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rated(rating int, tags ...string) *models.Feedback {
	return &models.Feedback{Rating: rating, Tags: pq.StringArray(tags)}
}

func TestAggregateRatings(t *testing.T) {
	tests := []struct {
		name     string
		feedback []*models.Feedback
		want     models.RatingSummary
	}{
		{
			name:     "no feedback",
			feedback: nil,
			want:     models.RatingSummary{SkillRatings: map[string]float64{}},
		},
		{
			name:     "average rounded to two decimals",
			feedback: []*models.Feedback{rated(5), rated(4), rated(4)},
			want:     models.RatingSummary{AverageRating: 4.33, TotalRatings: 3, SkillRatings: map[string]float64{}},
		},
		{
			name: "per tag means",
			feedback: []*models.Feedback{
				rated(5, "first-aid", "driving"),
				rated(2, "driving"),
				rated(3),
			},
			want: models.RatingSummary{
				AverageRating: 3.33,
				TotalRatings:  3,
				SkillRatings:  map[string]float64{"first-aid": 5, "driving": 3.5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateRatings(tt.feedback))
		})
	}
}

func TestRecomputeVolunteerRating(t *testing.T) {
	uc, m := newTestFeedbackUC(t)

	m.repo.EXPECT().ListByVolunteer(gomock.Any(), "v1").Return([]*models.Feedback{rated(4, "driving"), rated(5)}, nil)
	m.volunteer.EXPECT().UpdateRatings(gomock.Any(), "v1", models.RatingSummary{
		AverageRating: 4.5,
		TotalRatings:  2,
		SkillRatings:  map[string]float64{"driving": 4},
	}).Return(nil)

	require.NoError(t, uc.RecomputeVolunteerRating(context.Background(), "v1"))
}

func TestRecomputeVolunteerRating_ResetsWhenEmpty(t *testing.T) {
	uc, m := newTestFeedbackUC(t)

	m.repo.EXPECT().ListByVolunteer(gomock.Any(), "v1").Return(nil, nil)
	m.volunteer.EXPECT().UpdateRatings(gomock.Any(), "v1", models.RatingSummary{SkillRatings: map[string]float64{}}).Return(nil)

	require.NoError(t, uc.RecomputeVolunteerRating(context.Background(), "v1"))
}

func TestRecomputeVolunteerRating_Errors(t *testing.T) {
	t.Run("list failure is returned", func(t *testing.T) {
		uc, m := newTestFeedbackUC(t)
		m.repo.EXPECT().ListByVolunteer(gomock.Any(), "v1").Return(nil, errors.New("db down"))

		assert.EqualError(t, uc.RecomputeVolunteerRating(context.Background(), "v1"), "db down")
	})

	t.Run("removed volunteer is skipped", func(t *testing.T) {
		uc, m := newTestFeedbackUC(t)
		m.repo.EXPECT().ListByVolunteer(gomock.Any(), "v1").Return(nil, nil)
		m.volunteer.EXPECT().UpdateRatings(gomock.Any(), "v1", gomock.Any()).Return(models.ErrVolunteerNotFound)

		assert.NoError(t, uc.RecomputeVolunteerRating(context.Background(), "v1"))
	})
}
