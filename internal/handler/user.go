package handler

import (
	"github.com/deppfellow/mock-api/internal/dto"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/deppfellow/mock-api/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	Handler
	getAllUsers *service.GetAllUsers
}

func NewUserHandler(s *server.Server, getAllUsers *service.GetAllUsers) *UserHandler {
	return &UserHandler{
		Handler:     NewHandler(s),
		getAllUsers: getAllUsers,
	}
}

// GetAllUsers answers GET /api/users/:count after the artificial latency.
func (h *UserHandler) GetAllUsers(c echo.Context, req *dto.ListRequest) ([]model.User, error) {
	ctx := c.Request().Context()

	if err := h.simulateLatency(ctx); err != nil {
		return nil, err
	}

	return h.getAllUsers.Execute(ctx, int(req.Count))
}
