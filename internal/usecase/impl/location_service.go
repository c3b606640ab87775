package impl

import (
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"skillswap/config"
	deliverycontext "skillswap/internal/delivery/context"
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	// kmPerDegree is the length of one degree of latitude.
	kmPerDegree = 111.32
	// nearbyCandidateLimit caps the rows returned by the bounding box prefilter,
	// which returns the nearest rows first.
	nearbyCandidateLimit = 500
)

type locationService struct {
	txManager    repository.TransactionManager
	locationRepo repository.LocationRepository
	resolver     service.LocationResolver
	config       *config.LocationConfig
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	LocationRepo repository.LocationRepository
	Resolver     service.LocationResolver
	Config       *config.Config
	Logger       *slog.Logger
}

// NewLocationService creates a new location service instance
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager:    params.TxManager,
		locationRepo: params.LocationRepo,
		resolver:     params.Resolver,
		config:       params.Config.Location,
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUserLocations retrieves all locations for a user, primary first
func (srv *locationService) ListUserLocations(ctx context.Context, userID uuid.UUID) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.FindLocationsByOwner(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find locations by owner")
	}

	return locations, nil
}

// AddUserLocation saves a new location for a user, geocoding it when no coordinate is given.
func (srv *locationService) AddUserLocation(ctx context.Context, userID uuid.UUID, input *usecase.LocationInput) (*entity.Location, error) {
	location := &entity.Location{OwnerID: userID}
	srv.applyInput(ctx, location, input)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.NewLocationRepository()

		// Concurrent adds for the same user queue here until this transaction ends.
		if err := locationRepo.LockOwnerLocations(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to lock locations by owner")
		}

		count, err := locationRepo.CountLocationsByOwner(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count locations by owner")
		}
		if count >= int64(srv.config.MaxSavedPerUser) {
			return errors.Wrapf(domainerrors.ErrLocationLimitReached, "user already has %d locations", count)
		}

		if location.IsPrimary {
			if err := locationRepo.ClearPrimaryLocation(ctx, userID, uuid.Nil); err != nil {
				return errors.Wrap(err, "failed to clear previous primary location")
			}
		}

		if err := locationRepo.CreateLocation(ctx, location); err != nil {
			return primaryConflictOr(err, "failed to create location")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).InfoContext(ctx, "Location saved",
		slog.String("location_id", location.ID.String()),
		slog.Bool("is_primary", location.IsPrimary),
	)

	return location, nil
}

// UpdateUserLocation replaces the fields of a location owned by the user.
func (srv *locationService) UpdateUserLocation(ctx context.Context, userID, locationID uuid.UUID, input *usecase.LocationInput) (*entity.Location, error) {
	var location *entity.Location

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.NewLocationRepository()

		found, err := srv.findOwnedLocation(ctx, locationRepo, userID, locationID)
		if err != nil {
			return err
		}

		srv.applyInput(ctx, found, input)

		if found.IsPrimary {
			if err := locationRepo.ClearPrimaryLocation(ctx, userID, found.ID); err != nil {
				return errors.Wrap(err, "failed to clear previous primary location")
			}
		}

		if err := locationRepo.UpdateLocation(ctx, found); err != nil {
			return primaryConflictOr(err, "failed to update location")
		}
		location = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return location, nil
}

// DeleteUserLocation removes a location owned by the user.
func (srv *locationService) DeleteUserLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		locationRepo := repoFactory.NewLocationRepository()

		if _, err := srv.findOwnedLocation(ctx, locationRepo, userID, locationID); err != nil {
			return err
		}

		if err := locationRepo.DeleteLocation(ctx, locationID); err != nil {
			if errors.Is(err, repository.ErrLocationNotFound) {
				return errors.Wrap(domainerrors.ErrLocationNotFound, "location was removed concurrently")
			}

			return errors.Wrap(err, "failed to delete location")
		}

		return nil
	})
}

// primaryConflictOr reports a lost race on the one-primary-per-owner index as a
// retryable conflict and wraps any other error with msg.
func primaryConflictOr(err error, msg string) error {
	if errors.Is(err, repository.ErrPrimaryLocationConflict) {
		return errors.Wrap(domainerrors.ErrPrimaryLocationConflict, err.Error())
	}

	return errors.Wrap(err, msg)
}

// FindNearbyPublicLocations prefilters by bounding box in storage, then filters and sorts by great-circle distance.
func (srv *locationService) FindNearbyPublicLocations(ctx context.Context, center entity.Coordinate, radiusKm float64) ([]*usecase.NearbyLocation, error) {
	if !center.IsValid() {
		return nil, domainerrors.ErrInvalidCoordinate
	}

	radiusKm = srv.clampRadius(radiusKm)

	candidates, err := srv.locationRepo.FindPublicLocationsInBound(ctx, boundAround(center, radiusKm), nearbyCandidateLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find public locations in bound")
	}
	if len(candidates) >= nearbyCandidateLimit {
		srv.log(ctx).WarnContext(ctx, "Nearby search hit the candidate limit, farthest matches dropped",
			slog.Int("limit", nearbyCandidateLimit),
			slog.Float64("radius_km", radiusKm),
		)
	}

	nearby := make([]*usecase.NearbyLocation, 0, len(candidates))
	for _, candidate := range candidates {
		coord, ok := candidate.Coordinate()
		if !ok {
			continue
		}

		distance := srv.resolver.CalculateDistance(center, coord)
		if distance > radiusKm {
			continue
		}
		nearby = append(nearby, &usecase.NearbyLocation{Location: candidate, DistanceKm: distance})
	}

	slices.SortStableFunc(nearby, func(a, b *usecase.NearbyLocation) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		default:
			return 0
		}
	})

	return nearby, nil
}

func (srv *locationService) findOwnedLocation(ctx context.Context, locationRepo repository.LocationRepository, userID, locationID uuid.UUID) (*entity.Location, error) {
	location, err := locationRepo.FindLocationByID(ctx, locationID)
	if err != nil {
		if errors.Is(err, repository.ErrLocationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrLocationNotFound, "location not found")
		}

		return nil, errors.Wrap(err, "failed to find location by ID")
	}

	if location.OwnerID != userID {
		return nil, errors.Wrap(domainerrors.ErrLocationOwnershipViolation, "location belongs to another user")
	}

	return location, nil
}

// applyInput copies input onto location. Without a coordinate pair the address is geocoded
// and blank city, state, and country are filled from the match.
func (srv *locationService) applyInput(ctx context.Context, location *entity.Location, input *usecase.LocationInput) {
	location.Name = strings.TrimSpace(input.Name)
	location.Address = strings.TrimSpace(input.Address)
	location.City = strings.TrimSpace(input.City)
	location.District = strings.TrimSpace(input.District)
	location.State = strings.TrimSpace(input.State)
	location.Country = strings.TrimSpace(input.Country)
	location.PostalCode = strings.TrimSpace(input.PostalCode)
	location.IsPublic = input.IsPublic
	location.IsPrimary = input.IsPrimary
	location.Description = input.Description

	location.Category = input.Category
	if location.Category == "" {
		location.Category = entity.CategoryOther
	}

	if input.Latitude != nil && input.Longitude != nil {
		location.SetCoordinate(entity.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude})

		return
	}

	result := srv.resolver.GeocodeAddress(ctx, joinNonEmpty(location.Address, location.City, location.State, location.Country))
	location.SetCoordinate(result.Coordinate)
	if location.City == "" {
		location.City = result.City
	}
	if location.District == "" {
		location.District = result.District
	}
	if location.State == "" {
		location.State = result.State
	}
	if location.Country == "" {
		location.Country = result.Country
	}

	srv.log(ctx).DebugContext(ctx, "Location geocoded",
		slog.String("tier", string(result.Tier)),
		slog.String("country_code", result.CountryCode),
	)
}

func (srv *locationService) clampRadius(radiusKm float64) float64 {
	if radiusKm <= 0 || math.IsNaN(radiusKm) {
		return srv.config.NearbyRadiusKm
	}

	return math.Min(radiusKm, srv.config.MaxNearbyRadiusKm)
}

// boundAround returns a box that contains every point within radiusKm of center.
func boundAround(center entity.Coordinate, radiusKm float64) orb.Bound {
	latDelta := radiusKm / kmPerDegree

	lngDelta := 180.0
	if cos := math.Cos(center.Latitude * math.Pi / 180); cos > 1e-6 {
		lngDelta = math.Min(radiusKm/(kmPerDegree*cos), 180)
	}

	return orb.Bound{
		Min: orb.Point{math.Max(center.Longitude-lngDelta, -180), math.Max(center.Latitude-latDelta, -90)},
		Max: orb.Point{math.Min(center.Longitude+lngDelta, 180), math.Min(center.Latitude+latDelta, 90)},
	}
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			kept = append(kept, part)
		}
	}

	return strings.Join(kept, ", ")
}
