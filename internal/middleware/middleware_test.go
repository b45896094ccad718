package middleware_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/mock-api/internal/config"
	"github.com/deppfellow/mock-api/internal/errs"
	"github.com/deppfellow/mock-api/internal/middleware"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, out *bytes.Buffer) *server.Server {
	t.Helper()

	cfg := config.Default()
	cfg.Server.Port = 8080

	log := zerolog.New(out)
	s, err := server.New(cfg, &log, nil)
	require.NoError(t, err)

	return s
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errs.Response {
	t.Helper()

	var body errs.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"bad request", errs.NewBadRequestError("invalid count"), http.StatusBadRequest, "invalid count"},
		{"unauthorized", errs.NewUnauthorizedError("nope"), http.StatusUnauthorized, "nope"},
		{"forbidden", errs.NewForbiddenError("nope"), http.StatusForbidden, "nope"},
		{"not found", errs.NewNotFoundError("no such thing"), http.StatusNotFound, "no such thing"},
		{"conflict", errs.NewConflictError("clash"), http.StatusConflict, "clash"},
		{"internal", errs.NewInternalServerError("broken"), http.StatusInternalServerError, "broken"},
		{"unrecognized", errors.New("pq: password authentication failed"), http.StatusInternalServerError, "Internal Server error"},
		{"echo route", echo.ErrNotFound, http.StatusNotFound, "Route not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			s := newTestServer(t, &logs)
			global := middleware.NewGlobalMiddlewares(s)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/products/5", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			require.NoError(t, middleware.NewContextEnhancer(s).EnhanceContext()(func(echo.Context) error { return nil })(c))

			global.GlobalErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, decodeError(t, rec).Error)
			assert.NotContains(t, rec.Body.String(), "password")

			// every translation is logged, with the original error
			assert.Contains(t, logs.String(), tt.err.Error())
			assert.Contains(t, logs.String(), `"status":`)
		})
	}
}

func TestGlobalErrorHandler_CommittedResponse(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusCreated, "done"))

	middleware.NewGlobalMiddlewares(s).GlobalErrorHandler(errors.New("late failure"), c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
	assert.Contains(t, logs.String(), "late failure")
}

func TestGlobalErrorHandler_WithoutRequestLogger(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/abc", nil), rec)

	middleware.NewGlobalMiddlewares(s).GlobalErrorHandler(errs.NewBadRequestError("invalid count"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid count", decodeError(t, rec).Error)
	assert.Contains(t, logs.String(), "invalid count")
	assert.Contains(t, logs.String(), `"status":400`)
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := middleware.RequestID()(func(c echo.Context) error {
		seen = middleware.GetRequestID(c)
		return nil
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(middleware.RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, "abc-123", seen)
	assert.Equal(t, "abc-123", rec.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_ReplacesUnsafeUpstreamID(t *testing.T) {
	e := echo.New()
	h := middleware.RequestID()(func(c echo.Context) error { return nil })

	for _, upstream := range []string{
		"abc\n{\"level\":\"error\"}",
		"spaces are not allowed",
		strings.Repeat("a", 129),
	} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, upstream)
		rec := httptest.NewRecorder()

		require.NoError(t, h(e.NewContext(req, rec)))

		got := rec.Header().Get(middleware.RequestIDHeader)
		assert.NotEqual(t, upstream, got)
		_, err := uuid.Parse(got)
		assert.NoError(t, err)
	}
}

func TestGetLogger_WithoutEnhancer(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	logger := middleware.GetLogger(c)

	require.NotNil(t, logger)
	assert.NotPanics(t, func() { logger.Info().Msg("discarded") })
}

func TestOpenTelemetryMiddleware_RecordsErrors(t *testing.T) {
	var logs bytes.Buffer
	s := newTestServer(t, &logs)
	tracing := middleware.NewTracingMiddleware(s, nil)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/users/3", nil), httptest.NewRecorder())

	boom := errors.New("boom")
	err := tracing.OpenTelemetryMiddleware()(func(echo.Context) error { return boom })(c)
	assert.ErrorIs(t, err, boom)

	err = tracing.NewRelicMiddleware()(tracing.EnhanceTracing()(func(echo.Context) error { return nil }))(c)
	assert.NoError(t, err)
}
