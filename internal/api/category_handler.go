package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hoangmn/catalog-api/internal/api/middleware"
	"github.com/hoangmn/catalog-api/internal/api/shared"
	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/platform/logger"
	"github.com/hoangmn/catalog-api/internal/store"
)

// CategoryHandler handles category-related HTTP requests.
type CategoryHandler struct {
	categoryStore store.CategoryStore
	logger        *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler with the given dependencies.
func NewCategoryHandler(categoryStore store.CategoryStore, log *slog.Logger) *CategoryHandler {
	if log == nil {
		log = slog.Default()
	}
	return &CategoryHandler{
		categoryStore: categoryStore,
		logger:        log.With(slog.String("component", "category_handler")),
	}
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categories, err := h.categoryStore.List(r.Context())
	if err != nil {
		log.Error("failed to list categories", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	response := make([]CategorySummaryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, CategorySummaryResponse{
			ID:   category.ID,
			Name: category.Name,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Get handles GET /categories/{category_id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, ok := h.requireCategory(w, r)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, CategoryDetailResponse{
		Name:        category.Name,
		Description: category.Description,
	})
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	var req CreateCategoryRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if verr := ValidateRequest(req); verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	// Name collision pre-check. Concurrent creators can both pass it; the
	// unique constraint on category.name settles the race in the store.
	_, err := h.categoryStore.GetByName(r.Context(), req.Name)
	if err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgCategoryNameExists)
		return
	}
	if !errors.Is(err, store.ErrCategoryNotFound) {
		log.Error("failed to check category name", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	category, err := domain.NewCategory(req.Name, req.Description, user.ID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.categoryStore.Create(r.Context(), category); err != nil {
		if errors.Is(err, store.ErrCategoryNameExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgCategoryNameExists)
			return
		}
		log.Error("failed to create category", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: category.ID})
}

// Delete handles DELETE /categories/{category_id}.
// Existence is confirmed before ownership, so a non-existent-but-foreign
// category always reports 404, never 403.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	user, ok := middleware.CurrentUser(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgUnauthenticated)
		return
	}

	category, ok := h.requireCategory(w, r)
	if !ok {
		return
	}

	if err := domain.CheckOwnership(category, user.ID); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, msgForbidden)
		return
	}

	if err := h.categoryStore.Delete(r.Context(), category.ID); err != nil {
		log.Error("failed to delete category", "error", err, "category_id", category.ID)
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// requireCategory parses the category_id path parameter and loads the
// category, writing the appropriate error response on failure.
func (h *CategoryHandler) requireCategory(
	w http.ResponseWriter,
	r *http.Request,
) (*domain.Category, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	categoryID, verr := pathID(r, "category_id")
	if verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return nil, false
	}

	category, err := h.categoryStore.GetByID(r.Context(), categoryID)
	if err != nil {
		if errors.Is(err, store.ErrCategoryNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgCategoryNotFound)
			return nil, false
		}
		log.Error("failed to get category", "error", err, "category_id", categoryID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return nil, false
	}

	return category, true
}
