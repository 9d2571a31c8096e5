package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/piresc/reliefhub/internal/pkg/circuitbreaker"
	"github.com/piresc/reliefhub/internal/pkg/constants"
	httpclient "github.com/piresc/reliefhub/internal/pkg/http"
	"github.com/piresc/reliefhub/internal/pkg/logger"
	"github.com/piresc/reliefhub/internal/pkg/models"
	"github.com/piresc/reliefhub/internal/utils"
	"github.com/piresc/reliefhub/services/notification"
)

// errNoMessageUUID is returned when the provider accepts a request without an id
var errNoMessageUUID = errors.New("provider response has no message_uuid")

type messageRequest struct {
	MessageType string `json:"message_type"`
	Text        string `json:"text"`
	To          string `json:"to"`
	From        string `json:"from"`
	Channel     string `json:"channel"`
}

type messageResponse struct {
	MessageUUID string `json:"message_uuid"`
}

// smsGW sends SMS through the Vonage Messages API
type smsGW struct {
	client     *httpclient.Client
	breaker    *circuitbreaker.CircuitBreaker
	from       string
	configured bool
}

// NewSMSGateway creates a Vonage SMS gateway from cfg
func NewSMSGateway(cfg models.SMSConfig) notification.SMSGateway {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = constants.DefaultSMSBaseURL
	}
	from := cfg.From
	if from == "" {
		from = constants.DefaultSMSFrom
	}

	client := httpclient.NewClient(
		strings.TrimRight(baseURL, "/"),
		time.Duration(cfg.Timeout)*time.Second,
		httpclient.WithBasicAuth(cfg.APIKey, cfg.APISecret),
		httpclient.WithName("vonage"),
	)

	breakerCfg := circuitbreaker.DefaultConfig("vonage")
	breakerCfg.IsFailure = isProviderFailure

	return &smsGW{
		client:     client,
		breaker:    circuitbreaker.New(breakerCfg),
		from:       from,
		configured: cfg.Configured(),
	}
}

func (g *smsGW) Configured() bool {
	return g.configured
}

// SendText posts a text message. Vonage expects the number without the leading "+".
func (g *smsGW) SendText(ctx context.Context, to, text string) (string, error) {
	req := messageRequest{
		MessageType: "text",
		Text:        text,
		To:          strings.TrimPrefix(to, "+"),
		From:        g.from,
		Channel:     "sms",
	}

	var resp messageResponse
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		err := g.client.PostJSON(ctx, constants.SMSMessagesPath, req, &resp)
		if err != nil && ctx.Err() != nil {
			return &callerDoneError{err: err}
		}
		return err
	})
	if err != nil {
		return "", fmt.Errorf("failed to send SMS: %w", err)
	}
	if resp.MessageUUID == "" {
		return "", errNoMessageUUID
	}

	logger.Debug("SMS accepted by provider",
		logger.String("to", utils.MaskPhoneNumber(to)),
		logger.String("message_uuid", resp.MessageUUID))
	return resp.MessageUUID, nil
}

// callerDoneError marks a send abandoned because the caller's context ended
type callerDoneError struct {
	err error
}

func (e *callerDoneError) Error() string { return e.err.Error() }

func (e *callerDoneError) Unwrap() error { return e.err }

// isProviderFailure ignores 4xx responses, which reject one message rather
// than signal an outage, and sends the caller gave up on.
func isProviderFailure(err error) bool {
	var done *callerDoneError
	if err == nil || errors.As(err, &done) || errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode >= 500
	}
	return true
}
