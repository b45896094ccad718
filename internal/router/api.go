package router

import (
	"net/http"

	"github.com/deppfellow/mock-api/internal/dto"
	"github.com/deppfellow/mock-api/internal/handler"
	"github.com/labstack/echo/v4"
)

func registerProductRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("/products/:count", handler.Handle(
		h.Product.Handler,
		h.Product.GetAllProducts,
		http.StatusCreated,
		dto.NewListRequest,
	))
}

func registerUserRoutes(api *echo.Group, h *handler.Handlers) {
	api.GET("/users/:count", handler.Handle(
		h.User.Handler,
		h.User.GetAllUsers,
		http.StatusCreated,
		dto.NewListRequest,
	))
}
