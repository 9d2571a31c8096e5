package feedback

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// FeedbackRepo defines the interface for feedback persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/reliefhub/services/feedback FeedbackRepo
type FeedbackRepo interface {
	Upsert(ctx context.Context, f *models.Feedback) (*models.Feedback, error)
	GetByID(ctx context.Context, id string) (*models.Feedback, error)
	Update(ctx context.Context, f *models.Feedback) error
	Delete(ctx context.Context, id string) error
	ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Feedback, error)
	ListByVolunteer(ctx context.Context, volunteerID string) ([]*models.Feedback, error)
}
