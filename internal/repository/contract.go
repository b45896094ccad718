// Package repository provides the collections served by the API.
//
// There is no storage behind it: every call fans out to a record generator
// and joins the results. The interfaces in this file are what the service
// layer depends on, so any other source can be swapped in.
package repository

import (
	"context"

	"github.com/deppfellow/mock-api/internal/model"
)

// ProductRepository fetches a batch of products with ids 1..count in order.
type ProductRepository interface {
	FetchAll(ctx context.Context, count int) ([]model.Product, error)
}

// UserRepository fetches a batch of users with ids 1..count in order.
type UserRepository interface {
	FetchAll(ctx context.Context, count int) ([]model.User, error)
}
