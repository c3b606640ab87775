package pubsub

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	localPushTimeout      = 10 * time.Second
	localPushSubscription = "projects/local/subscriptions/meetup-events-push"
)

// PushEnvelope is the body Pub/Sub push subscriptions POST to their endpoint.
type PushEnvelope struct {
	Message      PushMessage `json:"message"`
	Subscription string      `json:"subscription"`
}

// PushMessage is the message part of a PushEnvelope. Data is base64 encoded.
type PushMessage struct {
	Data        string            `json:"data"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	MessageID   string            `json:"messageId"`
	OrderingKey string            `json:"orderingKey,omitempty"`
	PublishTime string            `json:"publishTime"`
}

// localHTTPPublisher delivers events straight to a push endpoint, standing in
// for Pub/Sub during local development.
type localHTTPPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

func NewLocalHTTPPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &localHTTPPublisher{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: localPushTimeout},
		logger:     logger,
	}
}

func (p *localHTTPPublisher) PublishMeetupEvent(ctx context.Context, event *service.MeetupEvent) error {
	msg, err := encodeEvent(event)
	if err != nil {
		return err
	}

	body, err := json.Marshal(PushEnvelope{
		Message: PushMessage{
			Data:        base64.StdEncoding.EncodeToString(msg.data),
			Attributes:  msg.attributes,
			MessageID:   event.MeetupID,
			OrderingKey: msg.orderingKey,
			PublishTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
		Subscription: localPushSubscription,
	})
	if err != nil {
		return errors.Wrap(err, "failed to encode push envelope")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if event.RequestID != "" {
		req.Header.Set("X-Request-Id", event.RequestID)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to push meetup event")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Errorf("push endpoint %s returned status %d", p.endpoint, resp.StatusCode)
	}

	p.logger.DebugContext(ctx, "Meetup event pushed",
		slog.String("endpoint", p.endpoint),
		slog.String("event_type", event.EventType),
		slog.String("meetup_id", event.MeetupID),
	)

	return nil
}

func (p *localHTTPPublisher) Close() error {
	p.httpClient.CloseIdleConnections()

	return nil
}
