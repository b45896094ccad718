// Package server holds the application container shared by every layer.
//
// It owns the lifecycle of:
//   - configuration
//   - logger and the New Relic service wrapper
//   - the OpenTelemetry tracer provider
//   - the Prometheus registry scraped at /metrics
//   - the http.Server
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/deppfellow/mock-api/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	loggerPkg "github.com/deppfellow/mock-api/internal/logger"
)

// Server is the application container. It is not the HTTP server itself.
type Server struct {
	Config *config.Config
	Logger *zerolog.Logger

	// LoggerService is never nil; its application is nil when New Relic is off.
	LoggerService *loggerPkg.LoggerService

	// TracerProvider is nil when no OTLP endpoint is configured.
	TracerProvider *sdktrace.TracerProvider

	// Metrics is private to this server so several servers (tests) can
	// register the same collectors without clashing.
	Metrics *prometheus.Registry

	httpServer *http.Server
}

// New builds the container. Tracing failures are logged and leave tracing
// disabled rather than blocking start-up.
func New(cfg *config.Config, logger *zerolog.Logger, loggerService *loggerPkg.LoggerService) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if loggerService == nil {
		loggerService = &loggerPkg.LoggerService{}
	}

	metrics := prometheus.NewRegistry()
	metrics.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	server := &Server{
		Config:        cfg,
		Logger:        logger,
		LoggerService: loggerService,
		Metrics:       metrics,
	}

	if cfg.Observability.Tracing.Enabled() {
		tp, err := InitTracing(context.Background(), &cfg.Observability)
		if err != nil {
			logger.Error().Err(err).Msg("failed to initialize tracing, continuing without it")
		} else {
			server.TracerProvider = tp
		}
	}

	return server, nil
}

// SetupHTTPServer configures the internal net/http server around handler.
func (s *Server) SetupHTTPServer(handler http.Handler) {
	s.httpServer = &http.Server{
		Addr:         ":" + strconv.Itoa(s.Config.Server.Port),
		Handler:      handler,
		ReadTimeout:  s.Config.Server.ReadTimeout,
		WriteTimeout: s.Config.Server.WriteTimeout,
		IdleTimeout:  s.Config.Server.IdleTimeout,
	}
}

// Start blocks until the server stops. It returns http.ErrServerClosed after
// a graceful Shutdown.
func (s *Server) Start() error {
	if s.httpServer == nil {
		return errors.New("HTTP server not initialized")
	}

	s.Logger.Info().
		Int("port", s.Config.Server.Port).
		Str("env", s.Config.Primary.Env).
		Dur("latency", s.Config.Generator.Latency).
		Msg("starting server")

	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting requests, waits for in-flight ones until ctx is
// done, then flushes telemetry.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown HTTP server: %w", err)
		}
	}

	if s.TracerProvider != nil {
		if err := s.TracerProvider.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown tracer provider: %w", err)
		}
	}

	s.LoggerService.Shutdown()

	return nil
}
