// Package datasource generates synthetic records.
//
// Every generator draws from one shared *gofakeit.Faker. The faker is created
// in locked mode, so it can be used from many goroutines at once.
package datasource

import "github.com/brianvoe/gofakeit/v7"

// NewFaker returns the randomness source shared by the generators.
// A zero seed picks a random one; any other value makes output reproducible
// as long as draws happen in the same order.
func NewFaker(seed uint64) *gofakeit.Faker {
	return gofakeit.New(seed)
}
