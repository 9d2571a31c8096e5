package aid

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// MatchGW notifies volunteers near a freshly stored aid request
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/reliefhub/services/aid MatchGW,EventGW,VolunteerRepo
type MatchGW interface {
	NotifyNearbyVolunteers(ctx context.Context, aidType models.AidType, aid models.AidRequest) *models.NotifySummary
}

// EventGW publishes aid lifecycle events
type EventGW interface {
	PublishAidCreated(ctx context.Context, event models.AidEvent) error
	PublishAidAssigned(ctx context.Context, event models.AidEvent) error
}

// VolunteerRepo is the part of the volunteer store the aid service writes to
type VolunteerRepo interface {
	UpdateCompletedAids(ctx context.Context, id string, count int) error
}
