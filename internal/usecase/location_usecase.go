package usecase

import (
	"context"

	"skillswap/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationInput represents the input for adding or replacing a saved location.
// Latitude and Longitude are optional; without them the address is geocoded.
type LocationInput struct {
	Name        string          `json:"name" validate:"required,max=200"`
	Address     string          `json:"address" validate:"max=500"`
	City        string          `json:"city" validate:"max=100"`
	District    string          `json:"district" validate:"max=100"`
	State       string          `json:"state" validate:"max=100"`
	Country     string          `json:"country" validate:"max=100"`
	PostalCode  string          `json:"postal_code" validate:"max=20"`
	Latitude    *float64        `json:"latitude" validate:"omitempty,latitude"`
	Longitude   *float64        `json:"longitude" validate:"omitempty,longitude"`
	Category    entity.Category `json:"category" validate:"omitempty,location_category"`
	IsPublic    bool            `json:"is_public"`
	IsPrimary   bool            `json:"is_primary"`
	Description string          `json:"description" validate:"max=1000"`
}

// NearbyLocation is a public location with its distance from the search center
type NearbyLocation struct {
	*entity.Location
	DistanceKm float64 `json:"distance_km"`
}

// LocationUsecase defines the interface for saved location use cases
type LocationUsecase interface {
	ListUserLocations(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error)
	AddUserLocation(ctx context.Context, userID uuid.UUID, input *LocationInput) (*entity.Location, error)
	UpdateUserLocation(ctx context.Context, userID, locationID uuid.UUID, input *LocationInput) (*entity.Location, error)
	DeleteUserLocation(ctx context.Context, userID, locationID uuid.UUID) error

	// FindNearbyPublicLocations returns public locations within radiusKm, nearest first.
	// A non-positive radius uses the configured default; larger than the maximum is clamped.
	FindNearbyPublicLocations(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*NearbyLocation, error)
}
