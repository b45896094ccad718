package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/mock-api/internal/middleware"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/deppfellow/mock-api/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// healthSampleSize is how many records each self-check generates.
const healthSampleSize = 3

type HealthHandler struct {
	Handler
	services *service.Services
}

func NewHealthHandler(s *server.Server, services *service.Services) *HealthHandler {
	return &HealthHandler{
		Handler:  NewHandler(s),
		services: services,
	}
}

type checkFunc func(ctx context.Context) error

// CheckHealth runs every generator through its use case, without the
// artificial latency, and verifies the records it gets back.
//
// It returns 200 when all checks pass and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	checks := map[string]any{}
	isHealthy := true

	for _, check := range []struct {
		name string
		run  checkFunc
	}{
		{"products", h.checkProducts},
		{"users", h.checkUsers},
	} {
		result, ok := h.runCheck(ctx, logger, check.name, check.run)
		checks[check.name] = result
		isHealthy = isHealthy && ok
	}

	response := map[string]any{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !isHealthy {
		response["status"] = "unhealthy"

		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":        "overall",
			"operation":         "health_check",
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})

		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}

	return nil
}

func (h *HealthHandler) runCheck(ctx context.Context, logger zerolog.Logger, name string, check checkFunc) (map[string]any, bool) {
	checkStart := time.Now()
	err := check(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("generator health check failed")

		h.recordHealthEvent(map[string]any{
			"check_type":       name,
			"operation":        "health_check",
			"error_type":       name + "_unhealthy",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})

		return map[string]any{
			"status":        "unhealthy",
			"response_time": elapsed.String(),
			"error":         err.Error(),
		}, false
	}

	return map[string]any{
		"status":        "healthy",
		"response_time": elapsed.String(),
	}, true
}

func (h *HealthHandler) checkProducts(ctx context.Context) error {
	products, err := h.services.GetAllProducts.Execute(ctx, healthSampleSize)
	if err != nil {
		return err
	}
	return verifyBatch(products, model.Product.Validate, func(p model.Product) int { return p.ID })
}

func (h *HealthHandler) checkUsers(ctx context.Context) error {
	users, err := h.services.GetAllUsers.Execute(ctx, healthSampleSize)
	if err != nil {
		return err
	}
	return verifyBatch(users, model.User.Validate, func(u model.User) int { return u.ID })
}

// verifyBatch checks the batch size, the id sequence and every record.
func verifyBatch[T any](batch []T, validate func(T) error, id func(T) int) error {
	if len(batch) != healthSampleSize {
		return fmt.Errorf("expected %d records, got %d", healthSampleSize, len(batch))
	}

	for i, record := range batch {
		if got := id(record); got != i+1 {
			return fmt.Errorf("record %d has id %d", i+1, got)
		}
		if err := validate(record); err != nil {
			return fmt.Errorf("record %d: %w", i+1, err)
		}
	}

	return nil
}

func (h *HealthHandler) recordHealthEvent(params map[string]any) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", params)
	}
}
