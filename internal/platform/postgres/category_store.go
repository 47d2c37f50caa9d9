package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/platform/logger"
	"github.com/hoangmn/catalog-api/internal/store"
)

// CategoryStore implements the store.CategoryStore interface using a
// PostgreSQL database as the storage backend.
type CategoryStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCategoryStore creates a new PostgreSQL implementation of the
// CategoryStore interface.
func NewCategoryStore(db store.DBTX, log *slog.Logger) *CategoryStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &CategoryStore{
		db:     db,
		logger: log.With(slog.String("component", "category_store")),
	}
}

// Ensure CategoryStore implements store.CategoryStore interface
var _ store.CategoryStore = (*CategoryStore)(nil)

// Create implements store.CategoryStore.Create
// The unique constraint on name is the authoritative duplicate check; the
// handler-level pre-check only exists for the friendlier error message.
func (s *CategoryStore) Create(ctx context.Context, category *domain.Category) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := category.Validate(); err != nil {
		log.Warn("category validation failed during create",
			slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO category (name, description, user_id, created, updated)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		category.Name,
		category.Description,
		category.UserID,
		category.CreatedAt,
		category.UpdatedAt,
	).Scan(&category.ID)

	if err != nil {
		if isUniqueViolation(err) {
			log.Debug("duplicate name during category creation",
				slog.String("name", category.Name))
			return store.ErrCategoryNameExists
		}
		log.Error("failed to create category",
			slog.String("error", err.Error()),
			slog.String("name", category.Name))
		return err
	}

	log.Info("category created successfully",
		slog.Int64("category_id", category.ID),
		slog.Int64("user_id", category.UserID))
	return nil
}

// GetByID implements store.CategoryStore.GetByID
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *CategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created, updated
		FROM category
		WHERE id = $1
	`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.UserID,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("category not found", slog.Int64("category_id", id))
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by ID",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return nil, err
	}

	return &category, nil
}

// GetByName implements store.CategoryStore.GetByName
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *CategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created, updated
		FROM category
		WHERE name = $1
	`

	var category domain.Category
	err := s.db.QueryRowContext(ctx, query, name).Scan(
		&category.ID,
		&category.Name,
		&category.Description,
		&category.UserID,
		&category.CreatedAt,
		&category.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCategoryNotFound
		}
		log.Error("failed to get category by name",
			slog.String("error", err.Error()),
			slog.String("name", name))
		return nil, err
	}

	return &category, nil
}

// List implements store.CategoryStore.List
// Returns an empty slice when no categories exist.
func (s *CategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, description, user_id, created, updated
		FROM category
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query categories", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	categories := []*domain.Category{}
	for rows.Next() {
		var category domain.Category
		err := rows.Scan(
			&category.ID,
			&category.Name,
			&category.Description,
			&category.UserID,
			&category.CreatedAt,
			&category.UpdatedAt,
		)
		if err != nil {
			log.Error("failed to scan category row", slog.String("error", err.Error()))
			return nil, err
		}
		categories = append(categories, &category)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return categories, nil
}

// Delete implements store.CategoryStore.Delete
// Items in the category are removed by ON DELETE CASCADE.
// Returns store.ErrCategoryNotFound if the category does not exist.
func (s *CategoryStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM category WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete category",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("category_id", id))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("category not found for delete", slog.Int64("category_id", id))
		return store.ErrCategoryNotFound
	}

	log.Info("category deleted successfully", slog.Int64("category_id", id))
	return nil
}
