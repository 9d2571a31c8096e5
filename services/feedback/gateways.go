package feedback

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// VolunteerRepo is the part of the volunteer store feedback reads and rates
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/reliefhub/services/feedback VolunteerRepo,AidRepo
type VolunteerRepo interface {
	GetByID(ctx context.Context, id string) (*models.Volunteer, error)
	UpdateRatings(ctx context.Context, id string, summary models.RatingSummary) error
}

// AidRepo resolves the aid request a feedback refers to
type AidRepo interface {
	GetMedicalByID(ctx context.Context, id string) (*models.MedicalAid, error)
	GetTransportByID(ctx context.Context, id string) (*models.TransportAid, error)
}
