package service

import (
	"context"
	"time"
)

// MeetupEvent is published when a meetup request changes state
type MeetupEvent struct {
	RequestID   string    `json:"request_id,omitempty"` // For distributed tracing
	EventType   string    `json:"event_type"`
	MeetupID    string    `json:"meetup_id"`
	RequesterID string    `json:"requester_id"`
	PartnerID   string    `json:"partner_id"`
	ProposedAt  time.Time `json:"proposed_at"`
	Message     string    `json:"message,omitempty"`
	PlaceName   string    `json:"place_name"`
	Display     string    `json:"display"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	MapURL      string    `json:"map_url"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishMeetupEvent publishes a meetup event for the notification pipeline
	PublishMeetupEvent(ctx context.Context, event *MeetupEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
