// Package web is the server-rendered browser front-end. Every page is a view
// over the REST api reached through the api client.
package web

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	slogecho "github.com/samber/slog-echo"
	"go.uber.org/fx"

	"ratesmart/config"
	"ratesmart/internal/delivery"
	"ratesmart/internal/delivery/middleware"
	"ratesmart/internal/domain/lifecycle"
	"ratesmart/internal/errors"
	"ratesmart/internal/infra/session"
)

type webServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the web server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Store   *session.Store
	Handler *Handler
}

// NewServer builds the front-end echo instance. Serve starts it.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e, err := NewEcho(params.Cfg, params.Logger, params.Store, params.Handler)
	if err != nil {
		return nil, err
	}

	srv := &webServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho assembles middleware, templates and routes.
func NewEcho(cfg *config.Config, logger *slog.Logger, store *session.Store, handler *Handler) (*echo.Echo, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	e.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	e.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	e.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout
	e.Renderer = r

	e.Pre(echomiddleware.RemoveTrailingSlash())

	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(logger).Process)
	e.Use(slogecho.New(logger))
	if cfg.HTTP.MaxRequestBodySize != "" {
		e.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))
	}
	e.Use(sessionMiddleware(store, cfg.Web))

	handler.RegisterRoutes(e)

	return e, nil
}

func (s *webServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.Web.Port))
	s.logger.Info("Starting web HTTP server", slog.String("host_port", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *webServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down web HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
