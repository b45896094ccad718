package handler

import (
	"github.com/deppfellow/mock-api/internal/dto"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/deppfellow/mock-api/internal/service"
	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	Handler
	getAllProducts *service.GetAllProducts
}

func NewProductHandler(s *server.Server, getAllProducts *service.GetAllProducts) *ProductHandler {
	return &ProductHandler{
		Handler:        NewHandler(s),
		getAllProducts: getAllProducts,
	}
}

// GetAllProducts answers GET /api/products/:count after the artificial latency.
func (h *ProductHandler) GetAllProducts(c echo.Context, req *dto.ListRequest) ([]model.Product, error) {
	ctx := c.Request().Context()

	if err := h.simulateLatency(ctx); err != nil {
		return nil, err
	}

	return h.getAllProducts.Execute(ctx, int(req.Count))
}
