package store

import (
	"context"

	"github.com/hoangmn/catalog-api/internal/domain"
)

// ItemStore defines the interface for item data persistence.
type ItemStore interface {
	// Create saves a new item and fills in its generated ID.
	// Returns ErrItemNameExists if the name is already taken.
	// Returns ErrInvalidEntity if the referenced category does not exist.
	Create(ctx context.Context, item *domain.Item) error

	// GetByID retrieves an item by its unique ID.
	// Returns ErrItemNotFound if the item does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Item, error)

	// GetByName retrieves an item by its unique name.
	// Returns ErrItemNotFound if the item does not exist.
	GetByName(ctx context.Context, name string) (*domain.Item, error)

	// ListByCategory returns items in the category ordered by ID, applying
	// limit and offset. Out-of-range offsets yield an empty slice.
	ListByCategory(ctx context.Context, categoryID int64, limit, offset int) ([]*domain.Item, error)

	// CountByCategory returns the total number of items in the category.
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)

	// UpdateDescription mutates only the description of an existing item.
	// Returns ErrItemNotFound if the item does not exist.
	UpdateDescription(ctx context.Context, id int64, description string) error

	// Delete removes an item by its ID.
	// Returns ErrItemNotFound if the item does not exist.
	Delete(ctx context.Context, id int64) error
}
