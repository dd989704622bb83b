// Package http wires the echo server, its middleware stack, and the
// route table into a Delivery the composition root can start.
package http

import (
	"context"
	"log/slog"
	"net"
	nethttp "net/http"
	"strconv"
	"syscall"

	"wchub/config"
	"wchub/internal/delivery"
	deliverymiddleware "wchub/internal/delivery/http/middleware"
	"wchub/internal/delivery/http/router"
	"wchub/internal/delivery/http/validator"
	"wchub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
)

// HTTPParams holds the server dependencies, injected by Fx.
type HTTPParams struct {
	fx.In
	fx.Lifecycle

	Config              *config.Config
	Logger              *slog.Logger
	RouterParams        router.RouterParams
	ErrorMiddleware     *deliverymiddleware.ErrorMiddleware
	RequestIDMiddleware *deliverymiddleware.RequestIDMiddleware
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the configured echo server.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	echoServer.Use(params.RequestIDMiddleware.Handle)
	echoServer.Use(slogecho.New(params.Logger))
	echoServer.Use(middleware.Recover())
	echoServer.Use(middleware.CORS())
	echoServer.Use(middleware.BodyLimit(params.Config.HTTP.MaxRequestBodySize))

	// Uploaded project images are served straight off the local bucket.
	echoServer.Static(params.Config.Upload.BaseURL, params.Config.Upload.Dir)

	router := router.NewRouter(params.RouterParams)
	router.RegisterRoutes(echoServer)

	delivery := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Append(fx.Hook{
		OnStop: delivery.stop,
	})

	return delivery, nil
}

// Serve starts the listener. When the configured port is already bound it
// walks forward one port at a time, up to the configured retry budget.
func (s *httpServer) Serve(ctx context.Context) error {
	port := s.cfg.HTTP.Port
	retries := s.cfg.HTTP.PortRetries

	for attempt := 0; ; attempt++ {
		hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(port+attempt))
		s.logger.Info("Starting HTTP server", slog.String("hostPort", hostPort))

		err := s.server.Start(hostPort)
		if err == nil || errors.Is(err, nethttp.ErrServerClosed) {
			return nil
		}

		if errors.Is(err, syscall.EADDRINUSE) && attempt < retries {
			s.logger.Warn("Port in use, trying next",
				slog.Int("port", port+attempt), slog.Int("attempt", attempt+1))

			continue
		}

		return errors.Wrap(err, "failed to serve http")
	}
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
