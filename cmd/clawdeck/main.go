package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"clawdeck/config"
	"clawdeck/internal/delivery"
	"clawdeck/internal/delivery/api"
	"clawdeck/internal/delivery/api/middleware"
	"clawdeck/internal/delivery/api/router/handler"
	"clawdeck/internal/domain/service"
	"clawdeck/internal/infra/auth"
	logs "clawdeck/internal/infra/log"
	"clawdeck/internal/infra/notification"
	"clawdeck/internal/infra/persistence/postgres"
	"clawdeck/internal/infra/pubsub"
	"clawdeck/internal/infra/qrcode"
	"clawdeck/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

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
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewTransactionManager,
			postgres.NewDeviceRepository,
			postgres.NewSkillRepository,
			postgres.NewBillingRepository,
			postgres.NewSettingsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			pubsub.NewEventPublisher,
			newFirebaseService,
			newQRCodeService,
		),
	)
}

// newFirebaseService creates a Firebase service with dependency injection
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, nil // Firebase is optional
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
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
			impl.NewSnapshots,
			impl.NewUserService,
			impl.NewDeviceService,
			impl.NewSkillService,
			impl.NewBillingService,
			impl.NewSettingsService,
			impl.NewSeedService,
			impl.NewBootstrapService,
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
			handler.NewUserHandler,
			handler.NewSessionHandler,
			handler.NewDeviceHandler,
			handler.NewSkillHandler,
			handler.NewBillingHandler,
			handler.NewSettingsHandler,
			handler.NewTestHandler,
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
