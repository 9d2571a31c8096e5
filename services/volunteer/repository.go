package volunteer

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// VolunteerRepo defines the interface for volunteer data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/reliefhub/services/volunteer VolunteerRepo
type VolunteerRepo interface {
	Create(ctx context.Context, v *models.Volunteer) error
	GetByID(ctx context.Context, id string) (*models.Volunteer, error)
	List(ctx context.Context, box *models.BoundingBox) ([]*models.Volunteer, error)
	Update(ctx context.Context, v *models.Volunteer) error
	Delete(ctx context.Context, id string) error
}
