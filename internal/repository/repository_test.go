package repository_test

import (
	"context"
	"testing"

	"github.com/deppfellow/mock-api/internal/datasource"
	"github.com/deppfellow/mock-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_FetchAll(t *testing.T) {
	repo := repository.NewProductRepo(datasource.NewProductGenerator(datasource.NewFaker(1)))

	for _, n := range []int{1, 2, 5, 37, 250} {
		products, err := repo.FetchAll(context.Background(), n)
		require.NoError(t, err)
		require.Len(t, products, n)

		for i, p := range products {
			assert.Equal(t, i+1, p.ID)
			assert.NoError(t, p.Validate())
		}
	}
}

func TestUserRepo_FetchAll(t *testing.T) {
	repo := repository.NewUserRepo(datasource.NewUserGenerator(datasource.NewFaker(1)))

	users, err := repo.FetchAll(context.Background(), 64)
	require.NoError(t, err)
	require.Len(t, users, 64)

	for i, u := range users {
		assert.Equal(t, i+1, u.ID)
		assert.NoError(t, u.Validate())
	}
}

func TestFetchAll_NonPositiveCountIsEmpty(t *testing.T) {
	faker := datasource.NewFaker(1)
	products := repository.NewProductRepo(datasource.NewProductGenerator(faker))
	users := repository.NewUserRepo(datasource.NewUserGenerator(faker))

	for _, n := range []int{0, -1, -100} {
		p, err := products.FetchAll(context.Background(), n)
		require.NoError(t, err)
		assert.NotNil(t, p)
		assert.Empty(t, p)

		u, err := users.FetchAll(context.Background(), n)
		require.NoError(t, err)
		assert.NotNil(t, u)
		assert.Empty(t, u)
	}
}

func TestFetchAll_RepeatedCallsAreIndependent(t *testing.T) {
	repo := repository.NewProductRepo(datasource.NewProductGenerator(datasource.NewFaker(0)))

	first, err := repo.FetchAll(context.Background(), 10)
	require.NoError(t, err)
	second, err := repo.FetchAll(context.Background(), 3)
	require.NoError(t, err)

	assert.Len(t, first, 10)
	assert.Len(t, second, 3)
	assert.Equal(t, 1, second[0].ID)
	assert.Equal(t, 3, second[2].ID)
}
