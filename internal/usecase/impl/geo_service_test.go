package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"skillswap/config"
	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"
	mockService "skillswap/internal/mocks/service"
	"skillswap/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var indiaCentroid = entity.Coordinate{Latitude: 20.5937, Longitude: 78.9629}

type geoServiceFixtures struct {
	service  usecase.GeoUsecase
	resolver *mockService.MockLocationResolver
	provider *mockService.MockLocationProvider
	qrCode   *mockService.MockQRCodeService
}

func createTestGeoService(t *testing.T, timeout time.Duration) geoServiceFixtures {
	resolver := mockService.NewMockLocationResolver(t)
	provider := mockService.NewMockLocationProvider(t)
	qrCode := mockService.NewMockQRCodeService(t)

	cfg := &config.Config{
		Location: &config.LocationConfig{
			Geolocation: &config.GeolocationConfig{
				Timeout:                timeout,
				FallbackAccuracyMeters: 100000,
			},
		},
	}

	svc := NewGeoService(GeoServiceParams{
		Resolver:      resolver,
		Provider:      provider,
		QRCodeService: qrCode,
		Config:        cfg,
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return geoServiceFixtures{
		service:  svc,
		resolver: resolver,
		provider: provider,
		qrCode:   qrCode,
	}
}

func assertFallback(t *testing.T, pos *entity.Position) {
	t.Helper()

	require.NotNil(t, pos)
	assert.True(t, pos.IsFallback)
	assert.Equal(t, entity.PositionSourceFallback, pos.Source)
	assert.Equal(t, indiaCentroid, pos.Coordinate)
	assert.InDelta(t, 100000, pos.AccuracyMeters, 0.001)
}

func TestGeoService_GetCurrentLocation_Success(t *testing.T) {
	fx := createTestGeoService(t, time.Second)

	fix := &entity.Position{
		Coordinate:     entity.Coordinate{Latitude: 12.9716, Longitude: 77.5946},
		AccuracyMeters: 25000,
		Source:         entity.PositionSourceIP,
	}
	fx.provider.EXPECT().Acquire(mock.Anything).Return(fix, nil)

	pos := fx.service.GetCurrentLocation(context.Background())

	assert.Equal(t, fix, pos)
	assert.False(t, pos.IsFallback)
}

func TestGeoService_GetCurrentLocation_Fallbacks(t *testing.T) {
	tests := []struct {
		name     string
		position *entity.Position
		err      error
	}{
		{
			name: "unavailable",
			err:  service.ErrGeolocationUnavailable,
		},
		{
			name: "provider error",
			err:  errors.New("lookup failed"),
		},
		{
			name: "nil position",
		},
		{
			name: "out of range position",
			position: &entity.Position{
				Coordinate: entity.Coordinate{Latitude: 123, Longitude: 77},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGeoService(t, time.Second)

			fx.provider.EXPECT().Acquire(mock.Anything).Return(tt.position, tt.err)
			fx.resolver.EXPECT().PrimaryCentroid().Return(indiaCentroid)

			assertFallback(t, fx.service.GetCurrentLocation(context.Background()))
		})
	}
}

func TestGeoService_GetCurrentLocation_ProviderPanics(t *testing.T) {
	fx := createTestGeoService(t, time.Second)

	fx.provider.EXPECT().Acquire(mock.Anything).RunAndReturn(func(context.Context) (*entity.Position, error) {
		panic("sensor exploded")
	})
	fx.resolver.EXPECT().PrimaryCentroid().Return(indiaCentroid)

	assertFallback(t, fx.service.GetCurrentLocation(context.Background()))
}

func TestGeoService_GetCurrentLocation_Timeout(t *testing.T) {
	timeout := 20 * time.Millisecond
	fx := createTestGeoService(t, timeout)

	released := make(chan struct{})
	fx.provider.EXPECT().Acquire(mock.Anything).RunAndReturn(func(ctx context.Context) (*entity.Position, error) {
		<-ctx.Done()
		close(released)

		return nil, ctx.Err()
	})
	fx.resolver.EXPECT().PrimaryCentroid().Return(indiaCentroid)

	start := time.Now()
	pos := fx.service.GetCurrentLocation(context.Background())
	elapsed := time.Since(start)

	assertFallback(t, pos)
	assert.GreaterOrEqual(t, elapsed, timeout)
	assert.Less(t, elapsed, time.Second)

	// The provider observes cancellation once the bound has passed.
	select {
	case <-released:
	case <-time.After(time.Second):
		t.Fatal("provider was not cancelled")
	}
}

func TestGeoService_DescribeLocation(t *testing.T) {
	fx := createTestGeoService(t, time.Second)

	loc := &entity.Location{Name: "Cubbon Park", City: "Bengaluru", Country: "India"}
	fx.resolver.EXPECT().FormatLocationDisplay(loc).Return("Cubbon Park, Bengaluru, India")
	fx.resolver.EXPECT().GetMapURL(loc).Return("https://www.google.com/maps/search/?api=1&query=Cubbon+Park")

	display := fx.service.DescribeLocation(loc)

	assert.Equal(t, "Cubbon Park, Bengaluru, India", display.Display)
	assert.Equal(t, "https://www.google.com/maps/search/?api=1&query=Cubbon+Park", display.MapURL)
}

func TestGeoService_GenerateMapQR(t *testing.T) {
	loc := &entity.Location{Name: "Cubbon Park"}
	mapURL := "https://www.google.com/maps?q=12.97,77.59&z=15"

	t.Run("success", func(t *testing.T) {
		fx := createTestGeoService(t, time.Second)

		fx.resolver.EXPECT().GetMapURL(loc).Return(mapURL)
		fx.qrCode.EXPECT().GenerateMapQR(mapURL).Return([]byte{0x89, 'P', 'N', 'G'}, nil)

		png, err := fx.service.GenerateMapQR(loc)

		require.NoError(t, err)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png)
	})

	t.Run("encoder error", func(t *testing.T) {
		fx := createTestGeoService(t, time.Second)
		encodeErr := errors.New("content too long")

		fx.resolver.EXPECT().GetMapURL(loc).Return(mapURL)
		fx.qrCode.EXPECT().GenerateMapQR(mapURL).Return(nil, encodeErr)

		png, err := fx.service.GenerateMapQR(loc)

		require.ErrorIs(t, err, encodeErr)
		assert.Nil(t, png)
	})
}

func TestGeoService_Passthrough(t *testing.T) {
	fx := createTestGeoService(t, time.Second)
	ctx := context.Background()

	a := entity.Coordinate{Latitude: 19.076, Longitude: 72.8777}
	b := entity.Coordinate{Latitude: 28.7041, Longitude: 77.1025}
	geocoded := &entity.GeocodeResult{Coordinate: a, Tier: entity.TierCity, City: "Mumbai"}

	fx.resolver.EXPECT().GeocodeAddress(ctx, "Bombay").Return(geocoded)
	fx.resolver.EXPECT().CalculateDistance(a, b).Return(1153.2)
	fx.resolver.EXPECT().GetPopularLocations("Chennai").Return([]*entity.Location{{Name: "Marina Beach"}})

	assert.Equal(t, geocoded, fx.service.GeocodeAddress(ctx, "Bombay"))
	assert.InDelta(t, 1153.2, fx.service.CalculateDistance(a, b), 0.0001)
	assert.Len(t, fx.service.GetPopularLocations("Chennai"), 1)
}
