package usecase

import (
	"context"
	"time"

	"skillswap/internal/domain/entity"

	"github.com/google/uuid"
)

// MeetupSuggestions are synthetic spots around the midpoint of two users
type MeetupSuggestions struct {
	Midpoint    entity.Coordinate  `json:"midpoint"`
	DistanceKm  float64            `json:"distance_km"`
	Suggestions []*entity.Location `json:"suggestions"`
}

// ProposeMeetupInput represents the input for proposing a meetup
type ProposeMeetupInput struct {
	PartnerID  uuid.UUID        `json:"partner_id" validate:"required"`
	Location   *entity.Location `json:"location" validate:"required"`
	ProposedAt time.Time        `json:"proposed_at" validate:"required"`
	Message    string           `json:"message" validate:"max=500"`
}

// MeetupUsecase defines the interface for meetup planning use cases
type MeetupUsecase interface {
	SuggestMeetupSpots(ctx context.Context, userID, partnerID uuid.UUID) (*MeetupSuggestions, error)
	ProposeMeetup(ctx context.Context, requesterID uuid.UUID, input *ProposeMeetupInput) (*entity.MeetupRequest, error)
}
