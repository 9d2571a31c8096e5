package aid

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// AidRepo defines the interface for aid request data access operations
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/reliefhub/services/aid AidRepo
type AidRepo interface {
	CreateMedical(ctx context.Context, aid *models.MedicalAid) error
	CreateTransport(ctx context.Context, aid *models.TransportAid) error
	ListMedical(ctx context.Context) ([]*models.MedicalAid, error)
	ListTransport(ctx context.Context) ([]*models.TransportAid, error)
	SearchMedicalByName(ctx context.Context, name string) ([]*models.MedicalAid, error)
	GetMedicalByID(ctx context.Context, id string) (*models.MedicalAid, error)
	GetTransportByID(ctx context.Context, id string) (*models.TransportAid, error)
	UpdateStatus(ctx context.Context, aidType models.AidType, id string, status models.AidStatus, assignedVolunteer *string) error
	CountCompletedByVolunteer(ctx context.Context, volunteerID string) (int, error)
}
