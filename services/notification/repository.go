package notification

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/models"
)

// NotificationRepo defines the interface for notification persistence
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/reliefhub/services/notification NotificationRepo
type NotificationRepo interface {
	Create(ctx context.Context, n *models.Notification) error
	Update(ctx context.Context, n *models.Notification) error
	GetByMessageID(ctx context.Context, messageID string) (*models.Notification, error)
	GetLatestPending(ctx context.Context, volunteerID string) (*models.Notification, error)
	ListByAid(ctx context.Context, aidType models.AidType, aidID string) ([]*models.Notification, error)
	ListRecent(ctx context.Context, limit int) ([]*models.Notification, error)
	ResponseStats(ctx context.Context, volunteerID string) (responded, contacted int, err error)
}
