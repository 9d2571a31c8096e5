package gateway

import (
	"context"

	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	nsqpkg "github.com/piresc/reliefhub/internal/pkg/nsq"
	"github.com/piresc/reliefhub/services/aid"
)

// eventGW publishes aid lifecycle events to NSQ
type eventGW struct {
	publisher nsqpkg.Publisher
}

// NewEventGW creates a new NSQ event gateway
func NewEventGW(publisher nsqpkg.Publisher) aid.EventGW {
	return &eventGW{
		publisher: publisher,
	}
}

// PublishAidCreated publishes an aid.created event
func (g *eventGW) PublishAidCreated(ctx context.Context, event models.AidEvent) error {
	logger.Debug("Publishing aid created event",
		logger.String("aid_id", event.AidID),
		logger.String("aid_type", string(event.AidType)))
	return g.publisher.Publish(constants.TopicAidCreated, event)
}

// PublishAidAssigned publishes an aid.assigned event
func (g *eventGW) PublishAidAssigned(ctx context.Context, event models.AidEvent) error {
	logger.Debug("Publishing aid assigned event",
		logger.String("aid_id", event.AidID),
		logger.String("volunteer_id", event.VolunteerID))
	return g.publisher.Publish(constants.TopicAidAssigned, event)
}
