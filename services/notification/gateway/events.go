package gateway

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	nsqpkg "github.com/piresc/reliefhub/internal/pkg/nsq"
	"github.com/piresc/reliefhub/services/notification"
)

type eventGW struct {
	publisher nsqpkg.Publisher
}

// NewEventGW creates a new NSQ event gateway for notification events
func NewEventGW(publisher nsqpkg.Publisher) notification.EventGW {
	return &eventGW{
		publisher: publisher,
	}
}

// PublishNotificationStatus publishes a notification.status event
func (g *eventGW) PublishNotificationStatus(ctx context.Context, event models.NotificationEvent) error {
	logger.Debug("Publishing notification status event",
		logger.String("notification_id", event.NotificationID),
		logger.String("status", string(event.Status)))
	return g.publisher.Publish(constants.TopicNotificationStatus, event)
}
