package usecase

import (
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/services/feedback"
)

type FeedbackUC struct {
	feedbackRepo  feedback.FeedbackRepo
	volunteerRepo feedback.VolunteerRepo
	aidRepo       feedback.AidRepo
	cfg           *models.Config
}

// NewFeedbackUC creates a new feedback usecase instance
func NewFeedbackUC(
	feedbackRepo feedback.FeedbackRepo,
	volunteerRepo feedback.VolunteerRepo,
	aidRepo feedback.AidRepo,
	cfg *models.Config,
) *FeedbackUC {
	return &FeedbackUC{
		feedbackRepo:  feedbackRepo,
		volunteerRepo: volunteerRepo,
		aidRepo:       aidRepo,
		cfg:           cfg,
	}
}
