package usecase

import (
	"context"
	"errors"

	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
)

// AggregateRatings derives a volunteer's rating summary from their feedback.
// The overall average is rounded to two decimals; every tag gets the mean
// rating of the feedback carrying it.
func AggregateRatings(feedback []*models.Feedback) models.RatingSummary {
	summary := models.RatingSummary{SkillRatings: map[string]float64{}}
	if len(feedback) == 0 {
		return summary
	}

	type tally struct {
		sum   int
		count int
	}
	total := 0
	tags := make(map[string]*tally)
	for _, f := range feedback {
		total += f.Rating
		for _, tag := range f.Tags {
			t, ok := tags[tag]
			if !ok {
				t = &tally{}
				tags[tag] = t
			}
			t.sum += f.Rating
			t.count++
		}
	}

	summary.AverageRating = utils.Round2(float64(total) / float64(len(feedback)))
	summary.TotalRatings = len(feedback)
	for tag, t := range tags {
		summary.SkillRatings[tag] = float64(t.sum) / float64(t.count)
	}
	return summary
}

// RecomputeVolunteerRating rebuilds the rating aggregate of a volunteer from
// the complete set of their feedback
func (uc *FeedbackUC) RecomputeVolunteerRating(ctx context.Context, volunteerID string) error {
	list, err := uc.feedbackRepo.ListByVolunteer(ctx, volunteerID)
	if err != nil {
		return err
	}

	summary := AggregateRatings(list)
	if err := uc.volunteerRepo.UpdateRatings(ctx, volunteerID, summary); err != nil {
		if errors.Is(err, models.ErrVolunteerNotFound) {
			logger.Warn("Skipping rating update for removed volunteer", logger.String("volunteer_id", volunteerID))
			return nil
		}
		return err
	}

	logger.Debug("Volunteer rating recomputed",
		logger.String("volunteer_id", volunteerID),
		logger.Float64("average_rating", summary.AverageRating),
		logger.Int("total_ratings", summary.TotalRatings))
	return nil
}
