// Package category holds the spending categories transactions point at.
// A transaction may reference a category that no longer exists; lookups
// treat that as a normal absent state, never an error.
package category

import (
	"github.com/google/uuid"
)

type Category struct {
	ID   uuid.UUID
	Name string
}

// Resolve finds the category with the given id by exact match. A nil id or
// a missing category returns ok=false; callers fall back to a blank label.
func Resolve(categories []Category, id *uuid.UUID) (Category, bool) {
	if id == nil {
		return Category{}, false
	}

	for _, c := range categories {
		if c.ID == *id {
			return c, true
		}
	}

	return Category{}, false
}
