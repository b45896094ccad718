package repository

import (
	"github.com/deppfellow/mock-api/internal/datasource"
	"github.com/deppfellow/mock-api/internal/server"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("github.com/deppfellow/mock-api/internal/repository")

// Repositories is a container for all repository instances.
//
// Both repositories share one faker, seeded from config.
type Repositories struct {
	Products ProductRepository
	Users    UserRepository
}

var (
	_ ProductRepository = (*ProductRepo)(nil)
	_ UserRepository    = (*UserRepo)(nil)
)

func NewRepositories(s *server.Server) *Repositories {
	faker := datasource.NewFaker(s.Config.Generator.Seed)

	return &Repositories{
		Products: NewProductRepo(datasource.NewProductGenerator(faker)),
		Users:    NewUserRepo(datasource.NewUserGenerator(faker)),
	}
}
