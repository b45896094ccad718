package datasource_test

import (
	"sync"
	"testing"

	"github.com/deppfellow/mock-api/internal/datasource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGenerator_Generate(t *testing.T) {
	gen := datasource.NewProductGenerator(datasource.NewFaker(42))

	for id := 1; id <= 500; id++ {
		p := gen.Generate(id)

		require.Equal(t, id, p.ID)
		require.NoError(t, p.Validate(), "product %d: %+v", id, p)
		assert.GreaterOrEqual(t, p.Price, 1.00)
		assert.LessOrEqual(t, p.Price, 100.00)
	}
}

func TestUserGenerator_Generate(t *testing.T) {
	gen := datasource.NewUserGenerator(datasource.NewFaker(42))

	for id := 1; id <= 500; id++ {
		u := gen.Generate(id)

		require.Equal(t, id, u.ID)
		require.NoError(t, u.Validate(), "user %d: %+v", id, u)
		assert.GreaterOrEqual(t, u.Age, 18)
		assert.LessOrEqual(t, u.Age, 65)
	}
}

func TestGenerators_SameSeedSameOutput(t *testing.T) {
	a := datasource.NewProductGenerator(datasource.NewFaker(7))
	b := datasource.NewProductGenerator(datasource.NewFaker(7))

	for id := 1; id <= 20; id++ {
		assert.Equal(t, a.Generate(id), b.Generate(id))
	}
}

func TestGenerators_SharedFakerIsConcurrencySafe(t *testing.T) {
	faker := datasource.NewFaker(0)
	products := datasource.NewProductGenerator(faker)
	users := datasource.NewUserGenerator(faker)

	var wg sync.WaitGroup
	errs := make(chan error, 200)

	for i := 1; i <= 100; i++ {
		wg.Add(2)
		go func(id int) {
			defer wg.Done()
			errs <- products.Generate(id).Validate()
		}(i)
		go func(id int) {
			defer wg.Done()
			errs <- users.Generate(id).Validate()
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
