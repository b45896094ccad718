package repository

import (
	"context"

	"github.com/deppfellow/mock-api/internal/datasource"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/samber/lo/parallel"
	"go.opentelemetry.io/otel/attribute"
)

// UserRepo implements UserRepository on top of a UserGenerator.
type UserRepo struct {
	generator *datasource.UserGenerator
}

func NewUserRepo(generator *datasource.UserGenerator) *UserRepo {
	return &UserRepo{generator: generator}
}

// FetchAll generates count users with ids 1..count concurrently.
func (r *UserRepo) FetchAll(ctx context.Context, count int) ([]model.User, error) {
	_, span := tracer.Start(ctx, "UserRepo.FetchAll")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.count", count))

	if count <= 0 {
		return []model.User{}, nil
	}

	return parallel.Times(count, func(i int) model.User {
		return r.generator.Generate(i + 1)
	}), nil
}
