package match

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// Notifier sends one aid request message to one volunteer
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/reliefhub/services/match Notifier
type Notifier interface {
	SendToVolunteer(ctx context.Context, volunteer *models.Volunteer, message, aidID string, aidType models.AidType) (*models.SendResult, error)
}
