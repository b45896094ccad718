package datasource

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/deppfellow/mock-api/internal/model"
	"github.com/samber/lo"
)

// ProductGenerator builds products from a shared faker.
type ProductGenerator struct {
	faker      *gofakeit.Faker
	categories []string
}

func NewProductGenerator(faker *gofakeit.Faker) *ProductGenerator {
	return &ProductGenerator{
		faker: faker,
		categories: lo.Map(model.Categories, func(c model.Category, _ int) string {
			return string(c)
		}),
	}
}

// Generate builds one product with the given id. It never fails.
func (g *ProductGenerator) Generate(id int) model.Product {
	return model.Product{
		ID:       id,
		Name:     g.faker.ProductName(),
		Category: model.Category(g.faker.RandomString(g.categories)),
		Price:    g.faker.Price(model.MinPrice, model.MaxPrice),
	}
}
