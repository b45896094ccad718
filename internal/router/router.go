// Package router builds the Echo instance: middleware, API routes, system
// routes and the single page application fallback.
package router

import (
	"github.com/deppfellow/mock-api/internal/handler"
	"github.com/deppfellow/mock-api/internal/middleware"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// Order matters: the logger enhancer needs the request id and both
	// trace contexts, and Recover must wrap the handlers.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Metrics.Collect(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.Tracing.OpenTelemetryMiddleware(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Global.Recover(),
		middlewares.Global.Static(),
	)

	registerSystemRoutes(router, h, middlewares)

	api := router.Group("/api")
	registerProductRoutes(api, h)
	registerUserRoutes(api, h)

	return router
}
