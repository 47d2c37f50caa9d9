package domain

import "time"

// Category is a named grouping of items owned by exactly one user.
// Category names are unique across the whole system.
type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewCategory creates a Category owned by the given user, ready for
// insertion. The ID is assigned by the store.
func NewCategory(name, description string, userID int64) (*Category, error) {
	now := time.Now().UTC()
	category := &Category{
		Name:        name,
		Description: description,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	return category, nil
}

// Validate checks that the Category has valid data.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 50 {
		return ErrNameTooLong
	}
	if c.Description == "" {
		return ErrEmptyDescription
	}
	if len(c.Description) > 5000 {
		return ErrDescriptionTooLong
	}
	if c.UserID <= 0 {
		return ErrInvalidID
	}
	return nil
}

// OwnerID implements Owned.
func (c *Category) OwnerID() int64 { return c.UserID }
