package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "skillswap/internal/delivery/context"
	"skillswap/internal/domain/constants"
	"skillswap/internal/domain/entity"
	domainerrors "skillswap/internal/domain/errors"
	"skillswap/internal/domain/repository"
	"skillswap/internal/domain/service"
	mockRepo "skillswap/internal/mocks/repository"
	mockService "skillswap/internal/mocks/service"
	"skillswap/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

type meetupServiceFixtures struct {
	service      *meetupService
	locationRepo *mockRepo.MockLocationRepository
	resolver     *mockService.MockLocationResolver
	publisher    *mockService.MockEventPublisher
}

func createTestMeetupService(t *testing.T) meetupServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	resolver := mockService.NewMockLocationResolver(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewMeetupService(MeetupServiceParams{
		LocationRepo: locationRepo,
		Resolver:     resolver,
		Publisher:    publisher,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}).(*meetupService)
	svc.now = func() time.Time { return fixedNow }

	return meetupServiceFixtures{
		service:      svc,
		locationRepo: locationRepo,
		resolver:     resolver,
		publisher:    publisher,
	}
}

func primaryAt(owner uuid.UUID, lat, lng float64, public bool) *entity.Location {
	loc := &entity.Location{ID: uuid.New(), OwnerID: owner, Name: "Home", IsPrimary: true, IsPublic: public}
	loc.SetCoordinate(entity.Coordinate{Latitude: lat, Longitude: lng})

	return loc
}

func TestMeetupService_SuggestMeetupSpots_Success(t *testing.T) {
	fx := createTestMeetupService(t)
	ctx := context.Background()
	userID, partnerID := uuid.New(), uuid.New()

	own := entity.Coordinate{Latitude: 19.0, Longitude: 72.8}
	partner := entity.Coordinate{Latitude: 19.2, Longitude: 73.0}
	suggestions := []*entity.Location{{Name: "Café near midpoint"}}

	fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, userID).Return(primaryAt(userID, own.Latitude, own.Longitude, false), nil)
	fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, partnerID).Return(primaryAt(partnerID, partner.Latitude, partner.Longitude, true), nil)
	fx.resolver.EXPECT().CalculateDistance(own, partner).Return(30.5)
	fx.resolver.EXPECT().FindMidpointLocations(own, partner).Return(suggestions)

	result, err := fx.service.SuggestMeetupSpots(ctx, userID, partnerID)

	require.NoError(t, err)
	assert.InDelta(t, 19.1, result.Midpoint.Latitude, 1e-9)
	assert.InDelta(t, 72.9, result.Midpoint.Longitude, 1e-9)
	assert.InDelta(t, 30.5, result.DistanceKm, 1e-9)
	assert.Equal(t, suggestions, result.Suggestions)
}

func TestMeetupService_SuggestMeetupSpots_Errors(t *testing.T) {
	userID, partnerID := uuid.New(), uuid.New()
	dbErr := errors.New("connection refused")

	unresolved := &entity.Location{OwnerID: partnerID, IsPrimary: true, IsPublic: true}

	tests := []struct {
		name      string
		partnerID uuid.UUID
		setup     func(fx meetupServiceFixtures, ctx context.Context)
		wantErr   error
	}{
		{
			name:      "self",
			partnerID: userID,
			wantErr:   domainerrors.ErrSelfMeetup,
		},
		{
			name:      "own primary missing",
			partnerID: partnerID,
			setup: func(fx meetupServiceFixtures, ctx context.Context) {
				fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, userID).Return(nil, repository.ErrLocationNotFound)
			},
			wantErr: domainerrors.ErrPrimaryLocationMissing,
		},
		{
			name:      "partner primary private",
			partnerID: partnerID,
			setup: func(fx meetupServiceFixtures, ctx context.Context) {
				fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, userID).Return(primaryAt(userID, 1, 1, false), nil)
				fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, partnerID).Return(primaryAt(partnerID, 2, 2, false), nil)
			},
			wantErr: domainerrors.ErrPartnerLocationPrivate,
		},
		{
			name:      "partner primary unresolved",
			partnerID: partnerID,
			setup: func(fx meetupServiceFixtures, ctx context.Context) {
				fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, userID).Return(primaryAt(userID, 1, 1, false), nil)
				fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, partnerID).Return(unresolved, nil)
			},
			wantErr: domainerrors.ErrPrimaryLocationMissing,
		},
		{
			name:      "repository failure",
			partnerID: partnerID,
			setup: func(fx meetupServiceFixtures, ctx context.Context) {
				fx.locationRepo.EXPECT().FindPrimaryLocationByOwner(ctx, userID).Return(nil, dbErr)
			},
			wantErr: dbErr,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMeetupService(t)
			ctx := context.Background()
			if tt.setup != nil {
				tt.setup(fx, ctx)
			}

			result, err := fx.service.SuggestMeetupSpots(ctx, userID, tt.partnerID)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
		})
	}
}

func TestMeetupService_ProposeMeetup_PublishesOneEvent(t *testing.T) {
	fx := createTestMeetupService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")
	requesterID, partnerID := uuid.New(), uuid.New()

	place := &entity.Location{Name: "Cubbon Park", City: "Bengaluru", Country: "India", Category: entity.CategoryPark}
	place.SetCoordinate(entity.Coordinate{Latitude: 12.9763, Longitude: 77.5929})

	input := &usecase.ProposeMeetupInput{
		PartnerID:  partnerID,
		Location:   place,
		ProposedAt: fixedNow.Add(48 * time.Hour),
		Message:    "Guitar for Spanish?",
	}

	var published *service.MeetupEvent
	fx.resolver.EXPECT().FormatLocationDisplay(mock.AnythingOfType("*entity.Location")).Return("Cubbon Park, Bengaluru, India")
	fx.resolver.EXPECT().GetMapURL(mock.AnythingOfType("*entity.Location")).Return("https://www.google.com/maps?q=12.9763,77.5929&z=15")
	fx.publisher.EXPECT().PublishMeetupEvent(ctx, mock.AnythingOfType("*service.MeetupEvent")).
		Run(func(_ context.Context, event *service.MeetupEvent) {
			published = event
		}).
		Return(nil).
		Once()

	request, err := fx.service.ProposeMeetup(ctx, requesterID, input)

	require.NoError(t, err)
	assert.Equal(t, entity.MeetupStatusPending, request.Status)
	assert.Equal(t, requesterID, request.RequesterID)
	assert.Equal(t, partnerID, request.PartnerID)
	assert.Equal(t, fixedNow, request.CreatedAt)
	assert.NotEqual(t, uuid.Nil, request.ID)

	require.NotNil(t, published)
	assert.Equal(t, constants.MeetupEventProposed, published.EventType)
	assert.Equal(t, "req-42", published.RequestID)
	assert.Equal(t, request.ID.String(), published.MeetupID)
	assert.Equal(t, "Cubbon Park", published.PlaceName)
	assert.Equal(t, "Cubbon Park, Bengaluru, India", published.Display)
	assert.InDelta(t, 12.9763, published.Latitude, 1e-9)
	fx.publisher.AssertNumberOfCalls(t, "PublishMeetupEvent", 1)
}

func TestMeetupService_ProposeMeetup_GeocodesUnresolvedPlace(t *testing.T) {
	fx := createTestMeetupService(t)
	ctx := context.Background()

	input := &usecase.ProposeMeetupInput{
		PartnerID:  uuid.New(),
		Location:   &entity.Location{Name: "Library", Address: "Anna Salai", City: "Chennai"},
		ProposedAt: fixedNow.Add(time.Hour),
	}
	geocoded := &entity.GeocodeResult{
		Coordinate: entity.Coordinate{Latitude: 13.0827, Longitude: 80.2707},
		Tier:       entity.TierCity,
		Country:    "India",
	}

	fx.resolver.EXPECT().GeocodeAddress(ctx, "Anna Salai, Chennai").Return(geocoded)
	fx.resolver.EXPECT().FormatLocationDisplay(mock.Anything).Return("Library, Anna Salai, Chennai, India")
	fx.resolver.EXPECT().GetMapURL(mock.Anything).Return("https://www.google.com/maps?q=13.0827,80.2707&z=15")
	fx.publisher.EXPECT().PublishMeetupEvent(ctx, mock.Anything).Return(nil)

	request, err := fx.service.ProposeMeetup(ctx, uuid.New(), input)

	require.NoError(t, err)
	assert.True(t, request.Location.IsResolved())
	assert.Equal(t, "India", request.Location.Country)
	assert.False(t, input.Location.IsResolved(), "input location must not be mutated")
}

func TestMeetupService_ProposeMeetup_Rejections(t *testing.T) {
	requesterID := uuid.New()
	place := &entity.Location{Name: "Cafe"}

	tests := []struct {
		name    string
		input   *usecase.ProposeMeetupInput
		wantErr error
	}{
		{
			name:    "self meetup",
			input:   &usecase.ProposeMeetupInput{PartnerID: requesterID, Location: place, ProposedAt: fixedNow.Add(time.Hour)},
			wantErr: domainerrors.ErrSelfMeetup,
		},
		{
			name:    "time in the past",
			input:   &usecase.ProposeMeetupInput{PartnerID: uuid.New(), Location: place, ProposedAt: fixedNow.Add(-time.Minute)},
			wantErr: domainerrors.ErrMeetupTimeInPast,
		},
		{
			name:    "time is now",
			input:   &usecase.ProposeMeetupInput{PartnerID: uuid.New(), Location: place, ProposedAt: fixedNow},
			wantErr: domainerrors.ErrMeetupTimeInPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestMeetupService(t)

			request, err := fx.service.ProposeMeetup(context.Background(), requesterID, tt.input)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, request)
			fx.publisher.AssertNotCalled(t, "PublishMeetupEvent", mock.Anything, mock.Anything)
		})
	}
}

func TestMeetupService_ProposeMeetup_PublishFailure(t *testing.T) {
	fx := createTestMeetupService(t)
	ctx := context.Background()
	publishErr := errors.New("topic not found")

	place := &entity.Location{Name: "Cafe"}
	place.SetCoordinate(entity.Coordinate{Latitude: 1, Longitude: 2})

	fx.resolver.EXPECT().FormatLocationDisplay(mock.Anything).Return("Cafe")
	fx.resolver.EXPECT().GetMapURL(mock.Anything).Return("https://www.google.com/maps?q=1,2&z=15")
	fx.publisher.EXPECT().PublishMeetupEvent(ctx, mock.Anything).Return(publishErr)

	request, err := fx.service.ProposeMeetup(ctx, uuid.New(), &usecase.ProposeMeetupInput{
		PartnerID:  uuid.New(),
		Location:   place,
		ProposedAt: fixedNow.Add(time.Hour),
	})

	require.ErrorIs(t, err, publishErr)
	assert.Nil(t, request)
}
