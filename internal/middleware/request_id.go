package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"

	// maxRequestIDLength bounds an upstream ID before it reaches log lines
	// and span attributes.
	maxRequestIDLength = 128
)

// RequestID tags every request with a correlation ID. An upstream
// X-Request-ID is kept when it is a plain token; anything else is replaced
// by a fresh UUID. The ID is stored under RequestIDKey and returned in the
// response header.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(RequestIDHeader)
			if !acceptableRequestID(id) {
				id = uuid.NewString()
			}

			c.Set(RequestIDKey, id)
			c.Response().Header().Set(RequestIDHeader, id)

			return next(c)
		}
	}
}

// GetRequestID returns the ID set by RequestID, or "" outside that middleware.
func GetRequestID(c echo.Context) string {
	id, _ := c.Get(RequestIDKey).(string)
	return id
}

func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	return lo.EveryBy([]rune(id), func(r rune) bool {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return true
		default:
			return lo.Contains([]rune("-_.:"), r)
		}
	})
}
