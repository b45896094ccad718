package middleware

import (
	"strings"

	"github.com/deppfellow/mock-api/internal/server"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records Prometheus request metrics into the server's
// own registry and serves them.
type MetricsMiddleware struct {
	server *server.Server
}

func NewMetricsMiddleware(s *server.Server) *MetricsMiddleware {
	return &MetricsMiddleware{server: s}
}

// Collect instruments every request except scrapes of the metrics endpoint.
// The empty namespace keeps metric names identical across services.
func (m *MetricsMiddleware) Collect() echo.MiddlewareFunc {
	return echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "",
		Subsystem:  "mock_api",
		Registerer: m.server.Metrics,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Path(), "/metrics")
		},
	})
}

func (m *MetricsMiddleware) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.server.Metrics,
	})
}
