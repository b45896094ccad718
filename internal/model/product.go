package model

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/samber/lo"
)

// Category is the closed set of product categories.
type Category string

const (
	CategoryDairy     Category = "Dairy"
	CategoryMeat      Category = "Meat"
	CategoryFruit     Category = "Fruit"
	CategoryVegetable Category = "Vegetable"
)

// Categories lists every valid Category in a stable order.
var Categories = []Category{
	CategoryDairy,
	CategoryMeat,
	CategoryFruit,
	CategoryVegetable,
}

// Valid reports whether c is one of Categories.
func (c Category) Valid() bool {
	return lo.Contains(Categories, c)
}

// Price bounds, inclusive.
const (
	MinPrice = 1.00
	MaxPrice = 100.00
)

// Product is one synthetic grocery item. Price has at most two decimals.
type Product struct {
	ID       int      `json:"id" validate:"gte=1"`
	Name     string   `json:"name" validate:"required"`
	Category Category `json:"category"`
	Price    float64  `json:"price" validate:"gte=1,lte=100"`
}

// Validate reports every broken invariant of p, not just the first one.
func (p Product) Validate() error {
	var result *multierror.Error

	if err := validate.Struct(p); err != nil {
		result = multierror.Append(result, err)
	}
	if !p.Category.Valid() {
		result = multierror.Append(result, fmt.Errorf("category %q is not one of %v", p.Category, Categories))
	}
	if p.Price != roundCents(p.Price) {
		result = multierror.Append(result, fmt.Errorf("price %v has more than two decimals", p.Price))
	}

	return result.ErrorOrNil()
}
