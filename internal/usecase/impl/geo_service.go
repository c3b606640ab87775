// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"skillswap/config"
	deliverycontext "skillswap/internal/delivery/context"
	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"
	"skillswap/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// geoService implements the GeoUsecase interface.
type geoService struct {
	resolver         service.LocationResolver
	provider         service.LocationProvider
	qrCodeService    service.QRCodeService
	timeout          time.Duration
	fallbackAccuracy float64
	logger           *slog.Logger
}

// GeoServiceParams holds dependencies for GeoService, injected by Fx.
type GeoServiceParams struct {
	fx.In

	Resolver      service.LocationResolver
	Provider      service.LocationProvider
	QRCodeService service.QRCodeService
	Config        *config.Config
	Logger        *slog.Logger
}

// NewGeoService is the constructor for geoService.
func NewGeoService(params GeoServiceParams) usecase.GeoUsecase {
	geo := params.Config.Location.Geolocation

	return &geoService{
		resolver:         params.Resolver,
		provider:         params.Provider,
		qrCodeService:    params.QRCodeService,
		timeout:          geo.Timeout,
		fallbackAccuracy: geo.FallbackAccuracyMeters,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *geoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

type acquireResult struct {
	position *entity.Position
	err      error
}

// GetCurrentLocation asks the provider for a fix and waits at most the configured timeout.
// Any failure, timeout, or invalid fix yields the primary country centroid marked as fallback.
func (srv *geoService) GetCurrentLocation(ctx context.Context) *entity.Position {
	acquireCtx, cancel := context.WithTimeout(ctx, srv.timeout)
	defer cancel()

	done := make(chan acquireResult, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- acquireResult{err: errors.Errorf("location provider panicked: %v", r)}
			}
		}()

		pos, err := srv.provider.Acquire(acquireCtx)
		done <- acquireResult{position: pos, err: err}
	}()

	select {
	case res := <-done:
		switch {
		case errors.Is(res.err, service.ErrGeolocationUnavailable):
			srv.log(ctx).DebugContext(ctx, "Geolocation unavailable, using fallback position")
		case res.err != nil:
			srv.log(ctx).WarnContext(ctx, "Geolocation failed, using fallback position",
				slog.Any("error", res.err),
			)
		case res.position == nil || !res.position.IsValid():
			srv.log(ctx).WarnContext(ctx, "Geolocation returned an unusable position, using fallback position")
		default:
			return res.position
		}
	case <-acquireCtx.Done():
		srv.log(ctx).WarnContext(ctx, "Geolocation timed out, using fallback position",
			slog.Duration("timeout", srv.timeout),
		)
	}

	return &entity.Position{
		Coordinate:     srv.resolver.PrimaryCentroid(),
		AccuracyMeters: srv.fallbackAccuracy,
		Source:         entity.PositionSourceFallback,
		IsFallback:     true,
	}
}

func (srv *geoService) GeocodeAddress(ctx context.Context, address string) *entity.GeocodeResult {
	return srv.resolver.GeocodeAddress(ctx, address)
}

func (srv *geoService) CalculateDistance(a, b entity.Coordinate) float64 {
	return srv.resolver.CalculateDistance(a, b)
}

func (srv *geoService) FindMidpointLocations(a, b entity.Coordinate) []*entity.Location {
	return srv.resolver.FindMidpointLocations(a, b)
}

func (srv *geoService) GetPopularLocations(city string) []*entity.Location {
	return srv.resolver.GetPopularLocations(city)
}

func (srv *geoService) DescribeLocation(location *entity.Location) *usecase.LocationDisplay {
	return &usecase.LocationDisplay{
		Display: srv.resolver.FormatLocationDisplay(location),
		MapURL:  srv.resolver.GetMapURL(location),
	}
}

func (srv *geoService) GetDirectionsURL(from, to *entity.Location) string {
	return srv.resolver.GetDirectionsURL(from, to)
}

// GenerateMapQR encodes the location's map link as a PNG QR code.
func (srv *geoService) GenerateMapQR(location *entity.Location) ([]byte, error) {
	png, err := srv.qrCodeService.GenerateMapQR(srv.resolver.GetMapURL(location))
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate map QR code")
	}

	return png, nil
}
