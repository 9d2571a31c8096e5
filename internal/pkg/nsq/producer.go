package nsq

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nsqio/go-nsq"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/retry"
)

// Publisher publishes JSON messages to topics
type Publisher interface {
	Publish(topic string, message interface{}) error
	Stop()
}

// transport is the part of *nsq.Producer used here
type transport interface {
	Publish(topic string, body []byte) error
	Stop()
}

// Producer handles publishing messages to NSQ topics
type Producer struct {
	producer transport
	policy   retry.Policy
}

// NewProducer creates a new NSQ producer and pings the daemon
func NewProducer(address string) (*Producer, error) {
	config := nsq.NewConfig()
	producer, err := nsq.NewProducer(address, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create NSQ producer: %w", err)
	}

	if err := producer.Ping(); err != nil {
		producer.Stop()
		return nil, fmt.Errorf("failed to ping NSQ daemon: %w", err)
	}

	return &Producer{producer: producer, policy: retry.DefaultPolicy()}, nil
}

// Publish sends a message to the specified topic
func (p *Producer) Publish(topic string, message interface{}) error {
	msgBytes, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	err = retry.Do(context.Background(), p.policy, "nsq publish "+topic, func(context.Context) error {
		return p.producer.Publish(topic, msgBytes)
	})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	logger.Debug("Published message", logger.String("topic", topic))
	return nil
}

// Stop gracefully stops the producer
func (p *Producer) Stop() {
	p.producer.Stop()
}

// NoopPublisher drops messages. It is used when no nsqd address is configured.
type NoopPublisher struct{}

// Publish logs and discards the message
func (NoopPublisher) Publish(topic string, message interface{}) error {
	logger.Debug("Event publishing disabled, dropping message", logger.String("topic", topic))
	return nil
}

// Stop is a no-op
func (NoopPublisher) Stop() {}

// NewPublisher returns a Producer for address, or a NoopPublisher when address is empty
func NewPublisher(address string) (Publisher, error) {
	if address == "" {
		return NoopPublisher{}, nil
	}
	return NewProducer(address)
}
