package category_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/anaramires/tally/internal/category"
)

func TestResolve(t *testing.T) {
	groceries := category.Category{ID: uuid.New(), Name: "Groceries"}
	rent := category.Category{ID: uuid.New(), Name: "Rent"}
	cats := []category.Category{groceries, rent}

	t.Run("Found", func(t *testing.T) {
		got, ok := category.Resolve(cats, &rent.ID)
		assert.True(t, ok)
		assert.Equal(t, rent, got)
	})

	t.Run("MissingID", func(t *testing.T) {
		missing := uuid.New()

		got, ok := category.Resolve(cats, &missing)
		assert.False(t, ok)
		assert.Empty(t, got.Name)
	})

	t.Run("NilID", func(t *testing.T) {
		_, ok := category.Resolve(cats, nil)
		assert.False(t, ok)
	})

	t.Run("EmptySet", func(t *testing.T) {
		id := uuid.New()

		_, ok := category.Resolve(nil, &id)
		assert.False(t, ok)
	})
}
