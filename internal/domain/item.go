package domain

import "time"

// Item is a named entity owned by one user and belonging to one category.
// Item names are unique across the whole system, not just per category.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"category_id"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewItem creates an Item in the given category owned by the given user,
// ready for insertion. The ID is assigned by the store.
func NewItem(name, description string, categoryID, userID int64) (*Item, error) {
	now := time.Now().UTC()
	item := &Item{
		Name:        name,
		Description: description,
		CategoryID:  categoryID,
		UserID:      userID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := item.Validate(); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate checks that the Item has valid data.
func (i *Item) Validate() error {
	if i.Name == "" {
		return ErrEmptyName
	}
	if len(i.Name) > 50 {
		return ErrNameTooLong
	}
	if i.Description == "" {
		return ErrEmptyDescription
	}
	if len(i.Description) > 5000 {
		return ErrDescriptionTooLong
	}
	if i.CategoryID <= 0 || i.UserID <= 0 {
		return ErrInvalidID
	}
	return nil
}

// OwnerID implements Owned.
func (i *Item) OwnerID() int64 { return i.UserID }
