package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hoangmn/catalog-api/internal/api/shared"
	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/store"
)

// Hand-rolled store mocks. Each method delegates to an optional function
// field; a nil field falls back to a not-found result so tests only set
// up the calls they care about.

type mockUserStore struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
}

func (m *mockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

func (m *mockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, store.ErrUserNotFound
}

type mockCategoryStore struct {
	createFn    func(ctx context.Context, category *domain.Category) error
	getByIDFn   func(ctx context.Context, id int64) (*domain.Category, error)
	getByNameFn func(ctx context.Context, name string) (*domain.Category, error)
	listFn      func(ctx context.Context) ([]*domain.Category, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockCategoryStore) Create(ctx context.Context, category *domain.Category) error {
	if m.createFn != nil {
		return m.createFn(ctx, category)
	}
	return nil
}

func (m *mockCategoryStore) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrCategoryNotFound
}

func (m *mockCategoryStore) GetByName(ctx context.Context, name string) (*domain.Category, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, store.ErrCategoryNotFound
}

func (m *mockCategoryStore) List(ctx context.Context) ([]*domain.Category, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return []*domain.Category{}, nil
}

func (m *mockCategoryStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockItemStore struct {
	createFn            func(ctx context.Context, item *domain.Item) error
	getByIDFn           func(ctx context.Context, id int64) (*domain.Item, error)
	getByNameFn         func(ctx context.Context, name string) (*domain.Item, error)
	listByCategoryFn    func(ctx context.Context, categoryID int64, limit, offset int) ([]*domain.Item, error)
	countByCategoryFn   func(ctx context.Context, categoryID int64) (int64, error)
	updateDescriptionFn func(ctx context.Context, id int64, description string) error
	deleteFn            func(ctx context.Context, id int64) error
}

func (m *mockItemStore) Create(ctx context.Context, item *domain.Item) error {
	if m.createFn != nil {
		return m.createFn(ctx, item)
	}
	return nil
}

func (m *mockItemStore) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrItemNotFound
}

func (m *mockItemStore) GetByName(ctx context.Context, name string) (*domain.Item, error) {
	if m.getByNameFn != nil {
		return m.getByNameFn(ctx, name)
	}
	return nil, store.ErrItemNotFound
}

func (m *mockItemStore) ListByCategory(
	ctx context.Context,
	categoryID int64,
	limit, offset int,
) ([]*domain.Item, error) {
	if m.listByCategoryFn != nil {
		return m.listByCategoryFn(ctx, categoryID, limit, offset)
	}
	return []*domain.Item{}, nil
}

func (m *mockItemStore) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	if m.countByCategoryFn != nil {
		return m.countByCategoryFn(ctx, categoryID)
	}
	return 0, nil
}

func (m *mockItemStore) UpdateDescription(ctx context.Context, id int64, description string) error {
	if m.updateDescriptionFn != nil {
		return m.updateDescriptionFn(ctx, id, description)
	}
	return nil
}

func (m *mockItemStore) Delete(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// Interface guards for the mocks.
var (
	_ store.UserStore     = (*mockUserStore)(nil)
	_ store.CategoryStore = (*mockCategoryStore)(nil)
	_ store.ItemStore     = (*mockItemStore)(nil)
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// withUser simulates the auth middleware by placing the given user in the
// request context before the handler runs.
func withUser(user *domain.User) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// doJSONRequest performs a request against the router with an optional
// JSON body and returns the recorder.
func doJSONRequest(
	t *testing.T,
	router http.Handler,
	method, target string,
	body interface{},
) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// errorMessage decodes the standard error envelope from the recorder.
func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var envelope shared.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.ErrorMessage
}
