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

// ItemHandler handles item-related HTTP requests. All item routes are
// nested under a category, so every handler resolves the category first.
type ItemHandler struct {
	categoryStore       store.CategoryStore
	itemStore           store.ItemStore
	defaultItemsPerPage int
	logger              *slog.Logger
}

// NewItemHandler creates a new ItemHandler with the given dependencies.
func NewItemHandler(
	categoryStore store.CategoryStore,
	itemStore store.ItemStore,
	defaultItemsPerPage int,
	log *slog.Logger,
) *ItemHandler {
	if log == nil {
		log = slog.Default()
	}
	return &ItemHandler{
		categoryStore:       categoryStore,
		itemStore:           itemStore,
		defaultItemsPerPage: defaultItemsPerPage,
		logger:              log.With(slog.String("component", "item_handler")),
	}
}

// Create handles POST /categories/{category_id}/items.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req CreateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if verr := ValidateRequest(req); verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	// Item names are unique system-wide. Same pre-check-then-insert shape
	// as categories; the unique constraint settles concurrent creators.
	_, err := h.itemStore.GetByName(r.Context(), req.Name)
	if err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgItemNameExists)
		return
	}
	if !errors.Is(err, store.ErrItemNotFound) {
		log.Error("failed to check item name", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	item, err := domain.NewItem(req.Name, req.Description, category.ID, user.ID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.itemStore.Create(r.Context(), item); err != nil {
		if errors.Is(err, store.ErrItemNameExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgItemNameExists)
			return
		}
		log.Error("failed to create item", "error", err)
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, CreatedResponse{ID: item.ID})
}

// List handles GET /categories/{category_id}/items.
// Pagination is 1-based; out-of-range pages return an empty list.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	category, ok := h.requireCategory(w, r)
	if !ok {
		return
	}

	page, verr := queryPositiveInt(r, "page", 1)
	if verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}
	itemsPerPage, verr := queryPositiveInt(r, "items_per_page", h.defaultItemsPerPage)
	if verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	offset := (page - 1) * itemsPerPage

	items, err := h.itemStore.ListByCategory(r.Context(), category.ID, itemsPerPage, offset)
	if err != nil {
		log.Error("failed to list items", "error", err, "category_id", category.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	total, err := h.itemStore.CountByCategory(r.Context(), category.ID)
	if err != nil {
		log.Error("failed to count items", "error", err, "category_id", category.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	response := ItemBatchResponse{
		TotalNumberOfItems: total,
		ItemsPerPage:       itemsPerPage,
		Items:              make([]ItemSummaryResponse, 0, len(items)),
	}
	for _, item := range items {
		response.Items = append(response.Items, ItemSummaryResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
		})
	}

	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// Get handles GET /categories/{category_id}/items/{item_id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	category, ok := h.requireCategory(w, r)
	if !ok {
		return
	}

	item, ok := h.requireItem(w, r, category)
	if !ok {
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, ItemDetailResponse{
		Name:        item.Name,
		Description: item.Description,
	})
}

// Update handles PUT /categories/{category_id}/items/{item_id}.
// Only the description is mutable.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
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

	item, ok := h.requireItem(w, r, category)
	if !ok {
		return
	}

	if err := domain.CheckOwnership(item, user.ID); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, msgForbidden)
		return
	}

	var req UpdateItemRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if verr := ValidateRequest(req); verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	if err := h.itemStore.UpdateDescription(r.Context(), item.ID, req.Description); err != nil {
		log.Error("failed to update item", "error", err, "item_id", item.ID)
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// Delete handles DELETE /categories/{category_id}/items/{item_id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

	item, ok := h.requireItem(w, r, category)
	if !ok {
		return
	}

	if err := domain.CheckOwnership(item, user.ID); err != nil {
		shared.RespondWithError(w, r, http.StatusForbidden, msgForbidden)
		return
	}

	if err := h.itemStore.Delete(r.Context(), item.ID); err != nil {
		log.Error("failed to delete item", "error", err, "item_id", item.ID)
		HandleServiceError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, struct{}{})
}

// requireCategory parses the category_id path parameter and loads the
// category, writing the appropriate error response on failure.
func (h *ItemHandler) requireCategory(
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

// requireItem parses the item_id path parameter and loads the item.
// An item that exists but belongs to a different category than the route
// path reports not-found, exactly like a missing item.
func (h *ItemHandler) requireItem(
	w http.ResponseWriter,
	r *http.Request,
	category *domain.Category,
) (*domain.Item, bool) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	itemID, verr := pathID(r, "item_id")
	if verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return nil, false
	}

	item, err := h.itemStore.GetByID(r.Context(), itemID)
	if err != nil {
		if errors.Is(err, store.ErrItemNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, msgItemNotFound)
			return nil, false
		}
		log.Error("failed to get item", "error", err, "item_id", itemID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return nil, false
	}

	if item.CategoryID != category.ID {
		shared.RespondWithError(w, r, http.StatusNotFound, msgItemNotFound)
		return nil, false
	}

	return item, true
}
