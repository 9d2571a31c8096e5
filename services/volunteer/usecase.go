package volunteer

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// VolunteerUC defines the interface for volunteer business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/reliefhub/services/volunteer VolunteerUC
type VolunteerUC interface {
	RegisterVolunteer(ctx context.Context, req *models.VolunteerRequest) (*models.Volunteer, error)
	ListVolunteers(ctx context.Context, query *models.VolunteerQuery) ([]*models.Volunteer, error)
	GetVolunteer(ctx context.Context, id string) (*models.Volunteer, error)
	UpdateVolunteer(ctx context.Context, id string, req *models.VolunteerRequest) (*models.Volunteer, error)
	DeleteVolunteer(ctx context.Context, id string) error
}
