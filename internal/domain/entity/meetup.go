package entity

import (
	"time"

	"github.com/google/uuid"
)

// MeetupStatus is the lifecycle state of a MeetupRequest.
type MeetupStatus string

const (
	MeetupStatusPending   MeetupStatus = "pending"
	MeetupStatusAccepted  MeetupStatus = "accepted"
	MeetupStatusDeclined  MeetupStatus = "declined"
	MeetupStatusCancelled MeetupStatus = "cancelled"
)

// MeetupRequest pairs two users with a proposed place and time.
// This service only creates pending requests; the rest of the lifecycle is owned by
// the messaging layer that consumes meetup events.
type MeetupRequest struct {
	ID          uuid.UUID    `json:"id"`
	RequesterID uuid.UUID    `json:"requester_id"`
	PartnerID   uuid.UUID    `json:"partner_id"`
	Location    *Location    `json:"location"`
	ProposedAt  time.Time    `json:"proposed_at"`
	Message     string       `json:"message,omitempty"`
	Status      MeetupStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
