package api

import (
	"errors"
	"net/http"

	"github.com/hoangmn/catalog-api/internal/api/shared"
	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/service/auth"
	"github.com/hoangmn/catalog-api/internal/store"
)

// Client-facing messages for the error taxonomy. Kept here so every route
// reports the same wording for the same failure.
const (
	msgUnauthenticated    = "User needs to authenticate"
	msgForbidden          = "User does not have permission to perform this action"
	msgCategoryNotFound   = "Cannot find the specified category"
	msgItemNotFound       = "Cannot find the specified item"
	msgEmailRegistered    = "This email is already registered"
	msgCategoryNameExists = "Category already exists"
	msgItemNameExists     = "Item already exists"
	msgInvalidCredentials = "Invalid email or password"
	msgUnexpectedError    = "An unexpected error occurred"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes based on
// the error type. This prevents leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden

	// Not found errors. A row that vanished between load and mutation
	// surfaces through the same not-found sentinels and maps to 404.
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Domain collisions
	case store.IsDuplicateError(err):
		return http.StatusBadRequest

	// Bad request errors
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the sanitized, user-facing message for the
// error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrMissingToken):
		return msgUnauthenticated

	case errors.Is(err, domain.ErrForbidden):
		return msgForbidden

	case errors.Is(err, store.ErrCategoryNotFound):
		return msgCategoryNotFound

	case errors.Is(err, store.ErrItemNotFound):
		return msgItemNotFound

	case errors.Is(err, store.ErrEmailExists):
		return msgEmailRegistered

	case errors.Is(err, store.ErrCategoryNameExists):
		return msgCategoryNameExists

	case errors.Is(err, store.ErrItemNameExists):
		return msgItemNameExists

	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return msgUnexpectedError
	}
}

// HandleServiceError is the single translation step from a service or
// store error to the HTTP envelope.
func HandleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err))
}
