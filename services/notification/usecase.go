package notification

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// NotificationUC defines the interface for SMS notification business logic
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/reliefhub/services/notification NotificationUC
type NotificationUC interface {
	SendToVolunteer(ctx context.Context, volunteer *models.Volunteer, message, aidID string, aidType models.AidType) (*models.SendResult, error)
	SendSMS(ctx context.Context, req *models.SendSMSRequest) (*models.SendResult, error)
	NotifyVolunteer(ctx context.Context, req *models.NotifyVolunteerRequest) (*models.VolunteerSummary, error)
	ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Notification, error)
	ListRecent(ctx context.Context) ([]*models.Notification, error)
	HandleDeliveryReceipt(ctx context.Context, receipt *models.DeliveryReceipt) error
	HandleInboundSMS(ctx context.Context, sms *models.InboundSMS) error
	Wait(ctx context.Context) error
}
