package store

import (
	"context"

	"github.com/hoangmn/catalog-api/internal/domain"
)

// CategoryStore defines the interface for category data persistence.
type CategoryStore interface {
	// Create saves a new category and fills in its generated ID.
	// Returns ErrCategoryNameExists if the name is already taken.
	Create(ctx context.Context, category *domain.Category) error

	// GetByID retrieves a category by its unique ID.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Category, error)

	// GetByName retrieves a category by its unique name.
	// Returns ErrCategoryNotFound if the category does not exist.
	GetByName(ctx context.Context, name string) (*domain.Category, error)

	// List returns all categories ordered by ID.
	List(ctx context.Context) ([]*domain.Category, error)

	// Delete removes a category by its ID. Items referencing the category
	// are removed by the database-level cascade.
	// Returns ErrCategoryNotFound if the category does not exist.
	Delete(ctx context.Context, id int64) error
}
