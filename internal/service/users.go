package service

import (
	"context"

	"github.com/deppfellow/mock-api/internal/model"
	"github.com/deppfellow/mock-api/internal/repository"
	"go.opentelemetry.io/otel/attribute"
)

// GetAllUsers is the user counterpart of GetAllProducts.
type GetAllUsers struct {
	repo     repository.UserRepository
	maxCount int
}

func NewGetAllUsers(repo repository.UserRepository, maxCount int) *GetAllUsers {
	return &GetAllUsers{
		repo:     repo,
		maxCount: maxCount,
	}
}

func (uc *GetAllUsers) Execute(ctx context.Context, count int) ([]model.User, error) {
	ctx, span := tracer.Start(ctx, "GetAllUsers.Execute")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.count", count))

	if err := checkCount(count, uc.maxCount); err != nil {
		return nil, err
	}

	return uc.repo.FetchAll(ctx, count)
}
