package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hoangmn/catalog-api/internal/api"
	apiMiddleware "github.com/hoangmn/catalog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	userHandler := api.NewUserHandler(
		app.userStore,
		app.jwtService,
		app.passwordHasher,
		app.passwordVerifier,
		app.logger,
	)
	categoryHandler := api.NewCategoryHandler(app.categoryStore, app.logger)
	itemHandler := api.NewItemHandler(
		app.categoryStore,
		app.itemStore,
		app.config.Pagination.DefaultItemsPerPage,
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Registration and login (public)
	r.Post("/users", userHandler.Register)
	r.Post("/users/auth", userHandler.Authenticate)

	// Browsing is public; only mutations require authentication.
	r.Get("/categories", categoryHandler.List)
	r.Get("/categories/{category_id}", categoryHandler.Get)
	r.Get("/categories/{category_id}/items", itemHandler.List)
	r.Get("/categories/{category_id}/items/{item_id}", itemHandler.Get)

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Post("/categories", categoryHandler.Create)
		r.Delete("/categories/{category_id}", categoryHandler.Delete)

		r.Post("/categories/{category_id}/items", itemHandler.Create)
		r.Put("/categories/{category_id}/items/{item_id}", itemHandler.Update)
		r.Delete("/categories/{category_id}/items/{item_id}", itemHandler.Delete)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
