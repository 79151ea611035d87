package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"its/config"
	"its/internal/delivery"
	httpmiddleware "its/internal/delivery/http/middleware"
	"its/internal/delivery/http/router"
	"its/internal/delivery/http/validator"
	"its/internal/delivery/middleware"
	"its/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RateLimiter  *httpmiddleware.RateLimiter
	RouterParams router.RouterParams
}

type httpServer struct {
	cfg         *config.Config
	logger      *slog.Logger
	server      *echo.Echo
	rateLimiter *httpmiddleware.RateLimiter
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &httpServer{
		cfg:         params.Cfg,
		logger:      params.Logger,
		server:      newEcho(params.Cfg, params.Logger, params.RateLimiter, params.RouterParams),
		rateLimiter: params.RateLimiter,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, rateLimiter *httpmiddleware.RateLimiter, routerParams router.RouterParams) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.RecoverWithConfig(echomiddleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("Recovered from panic", slog.Any("error", err), slog.String("stack", string(stack)))

			return err
		},
	}))

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Access log
	echoServer.Use(slogecho.NewWithConfig(logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelWarn,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))

	// 4. CORS and security headers
	corsConfig := echomiddleware.DefaultCORSConfig
	if len(cfg.HTTP.AllowOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.HTTP.AllowOrigins
	}
	echoServer.Use(echomiddleware.CORSWithConfig(corsConfig))
	echoServer.Use(echomiddleware.Secure())

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// 6. Per client rate limit
	echoServer.Use(rateLimiter.Handle)

	// Set up centralized error handler
	errorMiddleware := httpmiddleware.NewErrorMiddleware(logger, cfg.Env.Debug)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")
	s.rateLimiter.Close()

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
