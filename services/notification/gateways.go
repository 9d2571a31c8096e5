package notification

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// SMSGateway delivers text messages through the SMS provider
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/reliefhub/services/notification SMSGateway,EventGW,VolunteerRepo,AidAssigner
type SMSGateway interface {
	// Configured reports whether provider credentials are present
	Configured() bool
	// SendText sends text to the E.164 number and returns the provider message id
	SendText(ctx context.Context, to, text string) (string, error)
}

// EventGW publishes notification status changes
type EventGW interface {
	PublishNotificationStatus(ctx context.Context, event models.NotificationEvent) error
}

// VolunteerRepo is the part of the volunteer store the notification service uses
type VolunteerRepo interface {
	GetByID(ctx context.Context, id string) (*models.Volunteer, error)
	FindByPhone(ctx context.Context, phone string) (*models.Volunteer, error)
	FindByPhoneSuffix(ctx context.Context, suffix string) (*models.Volunteer, error)
	UpdateResponseRate(ctx context.Context, id string, rate float64) error
}

// AidAssigner assigns a volunteer to an aid request
type AidAssigner interface {
	AssignVolunteer(ctx context.Context, aidType models.AidType, id, volunteerID string) error
}
