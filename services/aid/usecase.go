package aid

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// AidUC defines the interface for aid request business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/reliefhub/services/aid AidUC
type AidUC interface {
	SubmitMedicalAid(ctx context.Context, req *models.MedicalAidRequest) (*models.AidSubmission, error)
	SubmitTransportAid(ctx context.Context, req *models.TransportAidRequest) (*models.AidSubmission, error)
	ListMedicalAids(ctx context.Context) ([]*models.MedicalAid, error)
	ListTransportAids(ctx context.Context) ([]*models.TransportAid, error)
	SearchMedicalAidsByName(ctx context.Context, name string) ([]*models.MedicalAid, error)
	GetMedicalAid(ctx context.Context, id string) (*models.MedicalAid, error)
	GetTransportAid(ctx context.Context, id string) (*models.TransportAid, error)
	UpdateAidStatus(ctx context.Context, aidType models.AidType, id string, req *models.AidStatusUpdateRequest) (models.AidRequest, error)
	AssignVolunteer(ctx context.Context, aidType models.AidType, id, volunteerID string) error
}
