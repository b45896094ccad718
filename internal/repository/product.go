package repository

import (
	"context"

	"github.com/deppfellow/mock-api/internal/datasource"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/samber/lo/parallel"
	"go.opentelemetry.io/otel/attribute"
)

// ProductRepo implements ProductRepository on top of a ProductGenerator.
type ProductRepo struct {
	generator *datasource.ProductGenerator
}

func NewProductRepo(generator *datasource.ProductGenerator) *ProductRepo {
	return &ProductRepo{generator: generator}
}

// FetchAll generates count products concurrently, one goroutine per record,
// and returns once all of them are done. A count of zero or less yields an
// empty, non-nil slice.
func (r *ProductRepo) FetchAll(ctx context.Context, count int) ([]model.Product, error) {
	_, span := tracer.Start(ctx, "ProductRepo.FetchAll")
	defer span.End()
	span.SetAttributes(attribute.Int("batch.count", count))

	if count <= 0 {
		return []model.Product{}, nil
	}

	return parallel.Times(count, func(i int) model.Product {
		return r.generator.Generate(i + 1)
	}), nil
}
