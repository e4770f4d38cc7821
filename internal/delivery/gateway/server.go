// Package gateway hosts the device-facing HTTP server. Devices authenticate
// with console-issued API keys instead of user JWTs.
package gateway

import (
	"context"
	"log/slog"
	"net"
	"strconv"

	"clawdeck/config"
	"clawdeck/internal/delivery"
	"clawdeck/internal/delivery/api/validator"
	"clawdeck/internal/delivery/gateway/router"
	"clawdeck/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

type gatewayServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer creates the gateway HTTP server.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomiddleware.Recover())
	e.Use(slogecho.New(params.Logger))
	e.Use(echomiddleware.BodyLimit(params.Cfg.HTTP.MaxRequestBodySize))
	e.Validator = validator.New()

	r := router.NewRouter(params.RouterParams)
	r.RegisterRoutes(e)

	srv := &gatewayServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// Serve starts the gateway HTTP server.
func (s *gatewayServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Gateway HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the gateway server.
func (s *gatewayServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Gateway HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
