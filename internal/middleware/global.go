package middleware

import (
	"net/http"
	"strings"

	"github.com/deppfellow/mock-api/internal/errs"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// GlobalMiddlewares groups the middleware applied to every route and the
// global error handler.
type GlobalMiddlewares struct {
	server *server.Server
}

func NewGlobalMiddlewares(s *server.Server) *GlobalMiddlewares {
	return &GlobalMiddlewares{
		server: s,
	}
}

func (global *GlobalMiddlewares) CORS() echo.MiddlewareFunc {
	return middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: global.server.Config.Server.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	})
}

// RequestLogger writes one "API" line per request, at a level chosen from
// the final status.
func (global *GlobalMiddlewares) RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogHost:    true,
		LogMethod:  true,
		LogURIPath: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			statusCode := v.Status

			// The error handler has not written the response yet when a
			// handler returns an error, so v.Status may still read 200.
			// See https://github.com/labstack/echo/issues/2310
			if v.Error != nil {
				statusCode, _ = errs.Translate(v.Error)
			}

			logger := global.logger(c)

			var e *zerolog.Event
			switch {
			case statusCode >= 500:
				e = logger.Error().Err(v.Error)
			case statusCode >= 400:
				e = logger.Warn()
			default:
				e = logger.Info()
			}

			e.
				Dur("latency", v.Latency).
				Int("status", statusCode).
				Str("uri", v.URI).
				Str("host", v.Host).
				Str("user_agent", c.Request().UserAgent()).
				Msg("API")

			return nil
		},
	})
}

func (global *GlobalMiddlewares) Recover() echo.MiddlewareFunc {
	return middleware.Recover()
}

func (global *GlobalMiddlewares) Secure() echo.MiddlewareFunc {
	return middleware.Secure()
}

// Static serves the single page application from the public path. Unknown
// paths fall back to index.html; API, docs and metrics paths are left to
// the router so they keep their JSON errors.
func (global *GlobalMiddlewares) Static() echo.MiddlewareFunc {
	return middleware.StaticWithConfig(middleware.StaticConfig{
		Root:       ".",
		Filesystem: http.Dir(global.server.Config.Server.PublicPath),
		Index:      "index.html",
		HTML5:      true,
		Skipper: func(c echo.Context) bool {
			path := c.Request().URL.Path
			return strings.HasPrefix(path, "/api") ||
				strings.HasPrefix(path, "/static") ||
				path == "/status" ||
				path == "/metrics"
		},
	})
}

// GlobalErrorHandler is the single place where errors become responses.
//
// A recognized *errs.HTTPError keeps its status and message. Anything else
// is logged in full and answered with a generic 500, so internal details
// never reach the client.
func (global *GlobalMiddlewares) GlobalErrorHandler(err error, c echo.Context) {
	status, body := errs.Translate(err)

	code := errs.MakeUpperCaseWithUnderscores(http.StatusText(status))
	var fieldErrors []errs.FieldError
	if httpErr := errs.Recognize(err); httpErr != nil {
		code = httpErr.Code
		fieldErrors = httpErr.Errors
	}

	logger := global.logger(c)

	var e *zerolog.Event
	if status >= http.StatusInternalServerError {
		e = logger.Error().Stack()
	} else {
		e = logger.Warn()
	}

	if len(fieldErrors) > 0 {
		e = e.Interface("field_errors", fieldErrors)
	}

	e.Err(err).
		Int("status", status).
		Str("error_code", code).
		Msg(body.Error)

	if c.Response().Committed {
		return
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}

	if writeErr := c.JSON(status, body); writeErr != nil {
		logger.Error().Err(writeErr).Msg("failed to write error response")
	}
}

// logger returns the request-scoped logger, or the server logger when the
// context enhancer has not run for this request.
func (global *GlobalMiddlewares) logger(c echo.Context) *zerolog.Logger {
	if logger, ok := c.Get(LoggerKey).(*zerolog.Logger); ok {
		return logger
	}
	return global.server.Logger
}
