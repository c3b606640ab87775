package main

import (
	"context"
	"log/slog"
	"os"

	"skillswap/config"
	"skillswap/internal/delivery"
	"skillswap/internal/delivery/api"
	"skillswap/internal/delivery/api/middleware"
	"skillswap/internal/delivery/api/router/handler"
	"skillswap/internal/domain/service"
	"skillswap/internal/infra/auth"
	"skillswap/internal/infra/geocode"
	"skillswap/internal/infra/geolocation"
	logs "skillswap/internal/infra/log"
	"skillswap/internal/infra/persistence/postgres"
	"skillswap/internal/infra/pubsub"
	"skillswap/internal/infra/qrcode"
	"skillswap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewLocationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			newLocationResolver,
			geolocation.NewProvider,
			newQRCodeService,
		),
	)
}

// newLocationResolver builds the static-table resolver for the configured primary country
func newLocationResolver(cfg *config.Config, logger *slog.Logger) (service.LocationResolver, error) {
	return geocode.NewResolver(cfg.Location.PrimaryCountry, cfg.Location.MapBaseURL, logger)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGeoService,
			impl.NewLocationService,
			impl.NewMeetupService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewGeoHandler,
			handler.NewLocationHandler,
			handler.NewMeetupHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
