package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/platform/logger"
	"github.com/hoangmn/catalog-api/internal/store"
)

// ItemStore implements the store.ItemStore interface using a PostgreSQL
// database as the storage backend.
type ItemStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewItemStore creates a new PostgreSQL implementation of the ItemStore
// interface.
func NewItemStore(db store.DBTX, log *slog.Logger) *ItemStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ItemStore{
		db:     db,
		logger: log.With(slog.String("component", "item_store")),
	}
}

// Ensure ItemStore implements store.ItemStore interface
var _ store.ItemStore = (*ItemStore)(nil)

// Create implements store.ItemStore.Create
// Returns store.ErrItemNameExists on a duplicate name and
// store.ErrInvalidEntity when the referenced category or user is missing.
func (s *ItemStore) Create(ctx context.Context, item *domain.Item) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := item.Validate(); err != nil {
		log.Warn("item validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO item (name, description, category_id, user_id, created, updated)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		item.Name,
		item.Description,
		item.CategoryID,
		item.UserID,
		item.CreatedAt,
		item.UpdatedAt,
	).Scan(&item.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate name during item creation",
				slog.String("name", item.Name))
			return store.ErrItemNameExists
		}
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during item creation",
				slog.Int64("category_id", item.CategoryID),
				slog.Int64("user_id", item.UserID))
			return fmt.Errorf("%w: category %d not found",
				store.ErrInvalidEntity, item.CategoryID)
		}
		log.Error("failed to create item",
			slog.String("error", err.Error()),
			slog.String("name", item.Name))
		return err
	}

	log.Info("item created successfully",
		slog.Int64("item_id", item.ID),
		slog.Int64("category_id", item.CategoryID))
	return nil
}

// GetByID implements store.ItemStore.GetByID
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, category_id, user_id, created, updated
		FROM item
		WHERE id = $1
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.CategoryID,
		&item.UserID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("item not found", slog.Int64("item_id", id))
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by ID",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return nil, err
	}

	return &item, nil
}

// GetByName implements store.ItemStore.GetByName
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, category_id, user_id, created, updated
		FROM item
		WHERE name = $1
	`

	var item domain.Item
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&item.ID,
		&item.Name,
		&item.Description,
		&item.CategoryID,
		&item.UserID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrItemNotFound
		}
		log.Error("failed to get item by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, err
	}

	return &item, nil
}

// ListByCategory implements store.ItemStore.ListByCategory
// Out-of-range offsets return an empty slice, not an error.
func (s *ItemStore) ListByCategory(
	ctx context.Context,
	categoryID int64,
	limit, offset int,
) ([]*domain.Item, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, category_id, user_id, created, updated
		FROM item
		WHERE category_id = $1
		ORDER BY id
		LIMIT $2 OFFSET $3
	`

	rows, err := s.db.QueryContext(ctx, query, categoryID, limit, offset)
	if err != nil {
		log.Error("failed to query items by category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	items := []*domain.Item{}
	for rows.Next() {
		var item domain.Item
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.CategoryID,
			&item.UserID,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan item row", slog.String("error", err.Error()))
			return nil, err
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return items, nil
}

// CountByCategory implements store.ItemStore.CountByCategory
func (s *ItemStore) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int64
	err := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(*) FROM item WHERE category_id = $1`,
		categoryID,
	).Scan(&count)
	if err != nil {
		log.Error("failed to count items by category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", categoryID))
		return 0, err
	}

	return count, nil
}

// UpdateDescription implements store.ItemStore.UpdateDescription
// Returns store.ErrItemNotFound if the item vanished between load and update.
func (s *ItemStore) UpdateDescription(ctx context.Context, id int64, description string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE item
		SET description = $1, updated = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, description, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to update item description",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("item not found for update", slog.Int64("item_id", id))
		return store.ErrItemNotFound
	}

	log.Info("item updated successfully", slog.Int64("item_id", id))
	return nil
}

// Delete implements store.ItemStore.Delete
// Returns store.ErrItemNotFound if the item does not exist.
func (s *ItemStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM item WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete item",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("item_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("item not found for delete", slog.Int64("item_id", id))
		return store.ErrItemNotFound
	}

	log.Info("item deleted successfully", slog.Int64("item_id", id))
	return nil
}
