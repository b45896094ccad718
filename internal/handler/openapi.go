package handler

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/mock-api/internal/server"
	"github.com/deppfellow/mock-api/static"
	"github.com/labstack/echo/v4"
)

// OpenAPIHandler serves the API reference page. The page loads
// /static/openapi.json itself.
type OpenAPIHandler struct {
	Handler
}

func NewOpenAPIHandler(s *server.Server) *OpenAPIHandler {
	return &OpenAPIHandler{
		Handler: NewHandler(s),
	}
}

func (h *OpenAPIHandler) ServeOpenAPIUI(c echo.Context) error {
	c.Response().Header().Set("Cache-Control", "no-cache")

	if err := c.HTMLBlob(http.StatusOK, static.OpenAPIHTML); err != nil {
		return fmt.Errorf("failed to write HTML response: %w", err)
	}

	return nil
}
