package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "skillswap/internal/delivery/context"
	"skillswap/internal/domain/constants"
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type meetupService struct {
	locationRepo repository.LocationRepository
	resolver     service.LocationResolver
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// MeetupServiceParams holds dependencies for MeetupService, injected by Fx.
type MeetupServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Resolver     service.LocationResolver
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewMeetupService creates a new meetup service instance
func NewMeetupService(params MeetupServiceParams) usecase.MeetupUsecase {
	return &meetupService{
		locationRepo: params.LocationRepo,
		resolver:     params.Resolver,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *meetupService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SuggestMeetupSpots returns spots around the midpoint of both users' primary locations.
func (srv *meetupService) SuggestMeetupSpots(ctx context.Context, userID, partnerID uuid.UUID) (*usecase.MeetupSuggestions, error) {
	if userID == partnerID {
		return nil, domainerrors.ErrSelfMeetup
	}

	own, err := srv.primaryCoordinate(ctx, userID)
	if err != nil {
		return nil, err
	}

	partnerLocation, err := srv.locationRepo.FindPrimaryLocationByOwner(ctx, partnerID)
	if err != nil {
		return nil, srv.primaryLookupError(err, "partner")
	}
	if !partnerLocation.IsPublic {
		return nil, domainerrors.ErrPartnerLocationPrivate
	}
	partner, ok := partnerLocation.Coordinate()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrPrimaryLocationMissing, "partner primary location is unresolved")
	}

	return &usecase.MeetupSuggestions{
		Midpoint: entity.Coordinate{
			Latitude:  (own.Latitude + partner.Latitude) / 2,
			Longitude: (own.Longitude + partner.Longitude) / 2,
		},
		DistanceKm:  srv.resolver.CalculateDistance(own, partner),
		Suggestions: srv.resolver.FindMidpointLocations(own, partner),
	}, nil
}

// ProposeMeetup creates a pending request and publishes exactly one meetup.proposed event.
func (srv *meetupService) ProposeMeetup(ctx context.Context, requesterID uuid.UUID, input *usecase.ProposeMeetupInput) (*entity.MeetupRequest, error) {
	if input.Location == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("location is required")
	}
	if requesterID == input.PartnerID {
		return nil, domainerrors.ErrSelfMeetup
	}

	now := srv.now()
	if !input.ProposedAt.After(now) {
		return nil, domainerrors.ErrMeetupTimeInPast
	}

	place := *input.Location
	if !place.IsResolved() {
		result := srv.resolver.GeocodeAddress(ctx, joinNonEmpty(place.Address, place.City, place.State, place.Country))
		place.SetCoordinate(result.Coordinate)
		if place.Country == "" {
			place.Country = result.Country
		}
	}

	request := &entity.MeetupRequest{
		ID:          uuid.New(),
		RequesterID: requesterID,
		PartnerID:   input.PartnerID,
		Location:    &place,
		ProposedAt:  input.ProposedAt.UTC(),
		Message:     input.Message,
		Status:      entity.MeetupStatusPending,
		CreatedAt:   now.UTC(),
	}

	coord, _ := place.Coordinate()
	event := &service.MeetupEvent{
		RequestID:   deliverycontext.GetRequestIDFromContext(ctx),
		EventType:   constants.MeetupEventProposed,
		MeetupID:    request.ID.String(),
		RequesterID: requesterID.String(),
		PartnerID:   input.PartnerID.String(),
		ProposedAt:  request.ProposedAt,
		Message:     request.Message,
		PlaceName:   place.Name,
		Display:     srv.resolver.FormatLocationDisplay(&place),
		Latitude:    coord.Latitude,
		Longitude:   coord.Longitude,
		MapURL:      srv.resolver.GetMapURL(&place),
	}

	if err := srv.publisher.PublishMeetupEvent(ctx, event); err != nil {
		return nil, errors.Wrap(err, "failed to publish meetup event")
	}

	srv.log(ctx).InfoContext(ctx, "Meetup proposed",
		slog.String("meetup_id", event.MeetupID),
		slog.String("partner_id", event.PartnerID),
	)

	return request, nil
}

func (srv *meetupService) primaryCoordinate(ctx context.Context, userID uuid.UUID) (entity.Coordinate, error) {
	location, err := srv.locationRepo.FindPrimaryLocationByOwner(ctx, userID)
	if err != nil {
		return entity.Coordinate{}, srv.primaryLookupError(err, "own")
	}

	coord, ok := location.Coordinate()
	if !ok {
		return entity.Coordinate{}, errors.Wrap(domainerrors.ErrPrimaryLocationMissing, "own primary location is unresolved")
	}

	return coord, nil
}

func (srv *meetupService) primaryLookupError(err error, whose string) error {
	if errors.Is(err, repository.ErrLocationNotFound) {
		return errors.Wrapf(domainerrors.ErrPrimaryLocationMissing, "%s primary location not set", whose)
	}

	return errors.Wrapf(err, "failed to find %s primary location", whose)
}
