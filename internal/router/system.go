package router

import (
	"github.com/deppfellow/mock-api/internal/handler"
	"github.com/deppfellow/mock-api/internal/middleware"
	"github.com/deppfellow/mock-api/static"
	"github.com/labstack/echo/v4"
)

// registerSystemRoutes mounts the endpoints that are not part of the API
// itself: health, docs, their assets and metrics.
func registerSystemRoutes(r *echo.Echo, h *handler.Handlers, m *middleware.Middlewares) {
	r.GET("/status", h.Health.CheckHealth)

	r.StaticFS("/static", static.FS)
	r.GET("/api/docs", h.OpenAPI.ServeOpenAPIUI)

	r.GET("/metrics", m.Metrics.Handler())
}
