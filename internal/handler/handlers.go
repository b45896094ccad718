package handler

import (
	"github.com/deppfellow/mock-api/internal/server"
	"github.com/deppfellow/mock-api/internal/service"
)

// Handlers groups every HTTP handler so the router receives a single value.
type Handlers struct {
	Product *ProductHandler
	User    *UserHandler
	Health  *HealthHandler
	OpenAPI *OpenAPIHandler
}

func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Product: NewProductHandler(s, services.GetAllProducts),
		User:    NewUserHandler(s, services.GetAllUsers),
		Health:  NewHealthHandler(s, services),
		OpenAPI: NewOpenAPIHandler(s),
	}
}
