package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/constants"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topics   []string
	messages []interface{}
	err      error
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topics = append(p.topics, topic)
	p.messages = append(p.messages, message)
	return p.err
}

func (p *recordingPublisher) Stop() {}

func TestPublishAidEvents(t *testing.T) {
	pub := &recordingPublisher{}
	gw := NewEventGW(pub)

	created := models.AidEvent{AidID: "a1", AidType: models.AidTypeMedical, Status: models.AidStatusPending, OccurredAt: time.Now()}
	assigned := models.AidEvent{AidID: "a1", AidType: models.AidTypeMedical, Status: models.AidStatusAssigned, VolunteerID: "v1"}

	require.NoError(t, gw.PublishAidCreated(context.Background(), created))
	require.NoError(t, gw.PublishAidAssigned(context.Background(), assigned))

	assert.Equal(t, []string{constants.TopicAidCreated, constants.TopicAidAssigned}, pub.topics)
	assert.Equal(t, created, pub.messages[0])
	assert.Equal(t, assigned, pub.messages[1])
}

func TestPublishAidCreated_Error(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("nsqd down")}
	gw := NewEventGW(pub)

	err := gw.PublishAidCreated(context.Background(), models.AidEvent{AidID: "a1"})

	assert.EqualError(t, err, "nsqd down")
}
