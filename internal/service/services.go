// Package service contains the use cases behind each endpoint.
//
// A use case sits between the handler and repository layers. It receives an
// already parsed request, applies the rules that belong to the domain and
// delegates to a repository. Repository errors are returned unchanged.
package service

import (
	"github.com/deppfellow/mock-api/internal/repository"
	"github.com/deppfellow/mock-api/internal/server"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/deppfellow/mock-api/internal/service")

type Services struct {
	GetAllProducts *GetAllProducts
	GetAllUsers    *GetAllUsers
}

func NewServices(s *server.Server, repos *repository.Repositories) (*Services, error) {
	maxCount := s.Config.Generator.MaxCount

	return &Services{
		GetAllProducts: NewGetAllProducts(repos.Products, maxCount),
		GetAllUsers:    NewGetAllUsers(repos.Users, maxCount),
	}, nil
}
