package service

import (
	"context"

	"github.com/deppfellow/mock-api/internal/model"
	"github.com/deppfellow/mock-api/internal/repository"
	"go.opentelemetry.io/otel/attribute"
)

// GetAllProducts checks a requested count and fetches that many products.
type GetAllProducts struct {
	repo     repository.ProductRepository
	maxCount int
}

func NewGetAllProducts(repo repository.ProductRepository, maxCount int) *GetAllProducts {
	return &GetAllProducts{
		repo:     repo,
		maxCount: maxCount,
	}
}

// Execute rejects a negative or oversized count before calling the repository.
func (uc *GetAllProducts) Execute(ctx context.Context, count int) ([]model.Product, error) {
	ctx, span := tracer.Start(ctx, "GetAllProducts.Execute")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.count", count))

	if err := checkCount(count, uc.maxCount); err != nil {
		return nil, err
	}

	return uc.repo.FetchAll(ctx, count)
}
