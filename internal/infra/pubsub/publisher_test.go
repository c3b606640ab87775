package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillswap/config"
	"skillswap/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func testEvent() *service.MeetupEvent {
	return &service.MeetupEvent{
		RequestID:   "req-1",
		EventType:   "meetup.proposed",
		MeetupID:    "m-1",
		RequesterID: "u-1",
		PartnerID:   "u-2",
		ProposedAt:  time.Date(2030, 1, 2, 15, 0, 0, 0, time.UTC),
		PlaceName:   "Cubbon Park",
		Latitude:    12.9763,
		Longitude:   77.5929,
	}
}

func TestLocalHTTPPublisher_PublishMeetupEvent(t *testing.T) {
	var got PushEnvelope
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishMeetupEvent(context.Background(), testEvent()))

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "m-1", got.Message.MessageID)
	assert.Equal(t, "meetup.proposed", got.Message.Attributes["event_type"])
	assert.Equal(t, "u-2", got.Message.Attributes["partner_id"])
	assert.Equal(t, "u-2", got.Message.OrderingKey)

	data, err := base64.StdEncoding.DecodeString(got.Message.Data)
	require.NoError(t, err)
	var event service.MeetupEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "Cubbon Park", event.PlaceName)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishMeetupEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestEncodeEvent(t *testing.T) {
	t.Run("attributes", func(t *testing.T) {
		msg, err := encodeEvent(testEvent())
		require.NoError(t, err)

		assert.Equal(t, map[string]string{
			"event_type":   "meetup.proposed",
			"meetup_id":    "m-1",
			"requester_id": "u-1",
			"partner_id":   "u-2",
			"request_id":   "req-1",
		}, msg.attributes)
		assert.Equal(t, "u-2", msg.orderingKey)
		assert.Contains(t, string(msg.data), `"place_name":"Cubbon Park"`)
	})

	t.Run("no request id outside a request", func(t *testing.T) {
		event := testEvent()
		event.RequestID = ""

		msg, err := encodeEvent(event)
		require.NoError(t, err)
		assert.NotContains(t, msg.attributes, "request_id")
	})

	t.Run("nil event", func(t *testing.T) {
		_, err := encodeEvent(nil)
		assert.Error(t, err)
	})
}

func TestNewEventPublisher_Selection(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.PubSubConfig
		wantErr bool
	}{
		{"Not configured", nil, false},
		{"Empty provider", &config.PubSubConfig{}, false},
		{"Local without endpoint", &config.PubSubConfig{Provider: "local"}, true},
		{"Local", &config.PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8085"}, false},
		{"Google without project", &config.PubSubConfig{Provider: "google"}, true},
		{"Unknown", &config.PubSubConfig{Provider: "kafka"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lc := &recordingLifecycle{}
			publisher, err := NewEventPublisher(PublisherParams{
				Lc:     lc,
				Ctx:    context.Background(),
				Config: &config.Config{PubSub: tt.cfg},
				Logger: slog.New(slog.DiscardHandler),
			})
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, publisher)

			if tt.cfg == nil || tt.cfg.Provider == "" {
				assert.Empty(t, lc.hooks)
				assert.NoError(t, publisher.PublishMeetupEvent(context.Background(), testEvent()))
			} else {
				assert.Len(t, lc.hooks, 1)
			}
		})
	}
}

type recordingLifecycle struct {
	hooks []fx.Hook
}

func (l *recordingLifecycle) Append(h fx.Hook) {
	l.hooks = append(l.hooks, h)
}
