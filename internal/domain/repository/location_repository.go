// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"skillswap/internal/domain/entity"
	"skillswap/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Domain-specific errors for location persistence.
var (
	// ErrLocationNotFound is returned when a saved location is not found.
	ErrLocationNotFound = errors.New("location not found")
	// ErrPrimaryLocationConflict is returned when an owner would end up with two primary locations.
	ErrPrimaryLocationConflict = errors.New("owner already has a primary location")
)

// LocationRepository defines the interface for saved location database operations.
type LocationRepository interface {
	// CreateLocation persists a new location and fills its ID and timestamps.
	CreateLocation(ctx context.Context, location *entity.Location) error

	// FindLocationByID retrieves a location by its unique ID.
	FindLocationByID(ctx context.Context, id uuid.UUID) (*entity.Location, error)

	// FindLocationsByOwner retrieves all locations of an owner, primary first.
	FindLocationsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Location, error)

	// FindPrimaryLocationByOwner returns ErrLocationNotFound if the owner has no primary location.
	FindPrimaryLocationByOwner(ctx context.Context, ownerID uuid.UUID) (*entity.Location, error)

	UpdateLocation(ctx context.Context, location *entity.Location) error

	DeleteLocation(ctx context.Context, id uuid.UUID) error

	// LockOwnerLocations blocks other writers of the owner's locations until the
	// enclosing transaction ends. Outside a transaction it has no lasting effect.
	LockOwnerLocations(ctx context.Context, ownerID uuid.UUID) error

	// CountLocationsByOwner is used for the per-user limit.
	CountLocationsByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// ClearPrimaryLocation unsets the primary flag on every location of the owner except exceptID.
	ClearPrimaryLocation(ctx context.Context, ownerID, exceptID uuid.UUID) error

	// FindPublicLocationsInBound returns resolved public locations inside the bound, nearest
	// to the bound's center first, at most limit rows.
	FindPublicLocationsInBound(ctx context.Context, bound orb.Bound, limit int) ([]*entity.Location, error)
}
