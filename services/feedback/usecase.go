package feedback

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// FeedbackUC defines the interface for volunteer feedback business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/reliefhub/services/feedback FeedbackUC
type FeedbackUC interface {
	SubmitFeedback(ctx context.Context, req *models.FeedbackRequest) (*models.Feedback, error)
	ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Feedback, error)
	ListByVolunteer(ctx context.Context, volunteerID string) ([]*models.Feedback, error)
	GetFeedback(ctx context.Context, id string) (*models.Feedback, error)
	UpdateFeedback(ctx context.Context, id string, req *models.FeedbackUpdateRequest) (*models.Feedback, error)
	DeleteFeedback(ctx context.Context, id string) error
	RecomputeVolunteerRating(ctx context.Context, volunteerID string) error
}
