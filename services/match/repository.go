package match

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// VolunteerRepo is the read side of the volunteer store used for matching
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/reliefhub/services/match VolunteerRepo
type VolunteerRepo interface {
	ListAvailable(ctx context.Context) ([]*models.Volunteer, error)
}
