package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/store"
)

const testDefaultItemsPerPage = 20

func newItemRouter(
	categoryStore store.CategoryStore,
	itemStore store.ItemStore,
	user *domain.User,
) http.Handler {
	h := NewItemHandler(categoryStore, itemStore, testDefaultItemsPerPage, testLogger())

	r := chi.NewRouter()
	if user != nil {
		r.Use(withUser(user))
	}
	r.Post("/categories/{category_id}/items", h.Create)
	r.Get("/categories/{category_id}/items", h.List)
	r.Get("/categories/{category_id}/items/{item_id}", h.Get)
	r.Put("/categories/{category_id}/items/{item_id}", h.Update)
	r.Delete("/categories/{category_id}/items/{item_id}", h.Delete)
	return r
}

// knownCategoryStore resolves category 3 and nothing else.
func knownCategoryStore() *mockCategoryStore {
	return &mockCategoryStore{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Category, error) {
			if id == 3 {
				return &domain.Category{
					ID: 3, Name: "Electronics", Description: "Gadgets", UserID: 7,
				}, nil
			}
			return nil, store.ErrCategoryNotFound
		},
	}
}

func TestItemHandler_Create(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: 7}
	validBody := CreateItemRequest{Name: "Laptop", Description: "A portable computer"}

	t.Run("success returns generated id", func(t *testing.T) {
		t.Parallel()

		var created *domain.Item
		itemStore := &mockItemStore{
			createFn: func(ctx context.Context, item *domain.Item) error {
				item.ID = 21
				created = item
				return nil
			},
		}
		router := newItemRouter(knownCategoryStore(), itemStore, owner)

		rec := doJSONRequest(t, router, http.MethodPost, "/categories/3/items", validBody)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.JSONEq(t, `{"id": 21}`, rec.Body.String())
		require.NotNil(t, created)
		assert.Equal(t, int64(3), created.CategoryID)
		assert.Equal(t, int64(7), created.UserID)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), &mockItemStore{}, nil)

		rec := doJSONRequest(t, router, http.MethodPost, "/categories/3/items", validBody)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("category not found", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), &mockItemStore{}, owner)

		rec := doJSONRequest(t, router, http.MethodPost, "/categories/99/items", validBody)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Cannot find the specified category", errorMessage(t, rec))
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		itemStore := &mockItemStore{
			getByNameFn: func(ctx context.Context, name string) (*domain.Item, error) {
				return &domain.Item{ID: 1, Name: name, CategoryID: 5, UserID: 8}, nil
			},
		}
		router := newItemRouter(knownCategoryStore(), itemStore, owner)

		rec := doJSONRequest(t, router, http.MethodPost, "/categories/3/items", validBody)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Item already exists", errorMessage(t, rec))
	})
}

func TestItemHandler_List(t *testing.T) {
	t.Parallel()

	// Fixture of 25 items; the mock applies limit/offset the way the real
	// store's LIMIT/OFFSET query does.
	const total = 25
	fixture := make([]*domain.Item, 0, total)
	for i := 1; i <= total; i++ {
		fixture = append(fixture, &domain.Item{
			ID:          int64(i),
			Name:        fmt.Sprintf("Item %d", i),
			Description: "A thing",
			CategoryID:  3,
			UserID:      7,
		})
	}

	itemStore := &mockItemStore{
		listByCategoryFn: func(
			ctx context.Context,
			categoryID int64,
			limit, offset int,
		) ([]*domain.Item, error) {
			if offset >= len(fixture) {
				return []*domain.Item{}, nil
			}
			end := offset + limit
			if end > len(fixture) {
				end = len(fixture)
			}
			return fixture[offset:end], nil
		},
		countByCategoryFn: func(ctx context.Context, categoryID int64) (int64, error) {
			return total, nil
		},
	}

	router := newItemRouter(knownCategoryStore(), itemStore, nil)

	tests := []struct {
		name        string
		target      string
		wantLen     int
		wantPerPage int
		wantFirstID int64
	}{
		{
			name:        "defaults",
			target:      "/categories/3/items",
			wantLen:     20,
			wantPerPage: testDefaultItemsPerPage,
			wantFirstID: 1,
		},
		{
			name:        "second page is the remainder",
			target:      "/categories/3/items?page=2",
			wantLen:     5,
			wantPerPage: testDefaultItemsPerPage,
			wantFirstID: 21,
		},
		{
			name:        "custom page size",
			target:      "/categories/3/items?page=3&items_per_page=10",
			wantLen:     5,
			wantPerPage: 10,
			wantFirstID: 21,
		},
		{
			name:        "page beyond the end is empty",
			target:      "/categories/3/items?page=4",
			wantLen:     0,
			wantPerPage: testDefaultItemsPerPage,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := doJSONRequest(t, router, http.MethodGet, tt.target, nil)
			require.Equal(t, http.StatusOK, rec.Code)

			var resp ItemBatchResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

			assert.Equal(t, int64(total), resp.TotalNumberOfItems)
			assert.Equal(t, tt.wantPerPage, resp.ItemsPerPage)
			require.Len(t, resp.Items, tt.wantLen)
			if tt.wantLen > 0 {
				assert.Equal(t, tt.wantFirstID, resp.Items[0].ID)
			}
		})
	}

	t.Run("invalid page parameter", func(t *testing.T) {
		t.Parallel()

		rec := doJSONRequest(t, router, http.MethodGet, "/categories/3/items?page=0", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "page: ensure this value is greater than 0", errorMessage(t, rec))
	})

	t.Run("invalid items_per_page parameter", func(t *testing.T) {
		t.Parallel()

		rec := doJSONRequest(t, router, http.MethodGet,
			"/categories/3/items?items_per_page=abc", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "items_per_page: value is not a valid integer", errorMessage(t, rec))
	})

	t.Run("category not found", func(t *testing.T) {
		t.Parallel()

		rec := doJSONRequest(t, router, http.MethodGet, "/categories/99/items", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestItemHandler_Get(t *testing.T) {
	t.Parallel()

	itemStore := &mockItemStore{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Item, error) {
			switch id {
			case 21:
				return &domain.Item{
					ID: 21, Name: "Laptop", Description: "A portable computer",
					CategoryID: 3, UserID: 7,
				}, nil
			case 22:
				// Lives in a different category than the route path.
				return &domain.Item{
					ID: 22, Name: "Novel", Description: "Fiction",
					CategoryID: 5, UserID: 7,
				}, nil
			}
			return nil, store.ErrItemNotFound
		},
	}
	router := newItemRouter(knownCategoryStore(), itemStore, nil)

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		rec := doJSONRequest(t, router, http.MethodGet, "/categories/3/items/21", nil)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp ItemDetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, ItemDetailResponse{
			Name:        "Laptop",
			Description: "A portable computer",
		}, resp)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		rec := doJSONRequest(t, router, http.MethodGet, "/categories/3/items/99", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Cannot find the specified item", errorMessage(t, rec))
	})

	t.Run("item under different category reports not found", func(t *testing.T) {
		t.Parallel()

		rec := doJSONRequest(t, router, http.MethodGet, "/categories/3/items/22", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Cannot find the specified item", errorMessage(t, rec))
	})
}

func TestItemHandler_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	owner := &domain.User{ID: 7}
	other := &domain.User{ID: 8}

	newItemStore := func() *mockItemStore {
		return &mockItemStore{
			getByIDFn: func(ctx context.Context, id int64) (*domain.Item, error) {
				if id == 21 {
					return &domain.Item{
						ID: 21, Name: "Laptop", Description: "A portable computer",
						CategoryID: 3, UserID: 7,
					}, nil
				}
				return nil, store.ErrItemNotFound
			},
		}
	}

	t.Run("owner updates description", func(t *testing.T) {
		t.Parallel()

		itemStore := newItemStore()
		var gotID int64
		var gotDescription string
		itemStore.updateDescriptionFn = func(ctx context.Context, id int64, description string) error {
			gotID = id
			gotDescription = description
			return nil
		}
		router := newItemRouter(knownCategoryStore(), itemStore, owner)

		rec := doJSONRequest(t, router, http.MethodPut, "/categories/3/items/21",
			UpdateItemRequest{Description: "A faster portable computer"})

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "{}", rec.Body.String())
		assert.Equal(t, int64(21), gotID)
		assert.Equal(t, "A faster portable computer", gotDescription)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), newItemStore(), other)

		rec := doJSONRequest(t, router, http.MethodPut, "/categories/3/items/21",
			UpdateItemRequest{Description: "Hijacked"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "User does not have permission to perform this action",
			errorMessage(t, rec))
	})

	t.Run("update with empty description", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), newItemStore(), owner)

		rec := doJSONRequest(t, router, http.MethodPut, "/categories/3/items/21",
			UpdateItemRequest{Description: ""})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "description: ensure this value has at least 1 characters",
			errorMessage(t, rec))
	})

	t.Run("owner deletes", func(t *testing.T) {
		t.Parallel()

		itemStore := newItemStore()
		var deleted int64
		itemStore.deleteFn = func(ctx context.Context, id int64) error {
			deleted = id
			return nil
		}
		router := newItemRouter(knownCategoryStore(), itemStore, owner)

		rec := doJSONRequest(t, router, http.MethodDelete, "/categories/3/items/21", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, int64(21), deleted)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), newItemStore(), other)

		rec := doJSONRequest(t, router, http.MethodDelete, "/categories/3/items/21", nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing item reports 404 before ownership", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), newItemStore(), other)

		rec := doJSONRequest(t, router, http.MethodDelete, "/categories/3/items/99", nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Cannot find the specified item", errorMessage(t, rec))
	})

	t.Run("unauthenticated delete", func(t *testing.T) {
		t.Parallel()

		router := newItemRouter(knownCategoryStore(), newItemStore(), nil)

		rec := doJSONRequest(t, router, http.MethodDelete, "/categories/3/items/21", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "User needs to authenticate", errorMessage(t, rec))
	})
}
