// Package geolocation implements service.LocationProvider backends.
package geolocation

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"skillswap/config"
	"skillswap/internal/domain/constants"
	"skillswap/internal/domain/entity"
	"skillswap/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the LocationProvider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewProvider selects the configured backend and wraps it in a position cache.
func NewProvider(params Params) (service.LocationProvider, error) {
	cfg := params.Config.Location.Geolocation
	logger := params.Logger

	var backend service.LocationProvider
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "", constants.GeolocationProviderNone:
		logger.Info("Geolocation not configured, every request uses the fallback position")

		return unavailableProvider{}, nil

	case constants.GeolocationProviderStatic:
		backend = NewStaticProvider(entity.Coordinate{
			Latitude:  cfg.Static.Latitude,
			Longitude: cfg.Static.Longitude,
		}, cfg.Static.AccuracyMeters)

	case constants.GeolocationProviderIPAPI:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for ipapi geolocation provider")
		}
		backend = NewIPAPIProvider(cfg.Endpoint, &http.Client{Timeout: cfg.Timeout}, logger)

	default:
		return nil, errors.Errorf("unknown geolocation provider: %s", cfg.Provider)
	}

	logger.Info("Geolocation provider initialized",
		slog.String("provider", cfg.Provider),
		slog.Duration("cache_max_age", cfg.CacheMaxAge),
	)

	return NewCachingProvider(backend, cfg.CacheSize, cfg.CacheMaxAge), nil
}

// unavailableProvider is used when no geolocation capability exists.
type unavailableProvider struct{}

func (unavailableProvider) Acquire(context.Context) (*entity.Position, error) {
	return nil, service.ErrGeolocationUnavailable
}

// staticProvider always reports one configured position.
type staticProvider struct {
	position entity.Position
}

// NewStaticProvider returns a provider that always reports coord.
func NewStaticProvider(coord entity.Coordinate, accuracyMeters float64) service.LocationProvider {
	return &staticProvider{
		position: entity.Position{
			Coordinate:     coord,
			AccuracyMeters: accuracyMeters,
			Source:         entity.PositionSourceStatic,
		},
	}
}

func (p *staticProvider) Acquire(ctx context.Context) (*entity.Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	pos := p.position

	return &pos, nil
}
