// Package api provides HTTP handlers for the catalog API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/hoangmn/catalog-api/internal/api/shared"
	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/platform/logger"
	"github.com/hoangmn/catalog-api/internal/service/auth"
	"github.com/hoangmn/catalog-api/internal/store"
)

// UserHandler handles registration and authentication requests.
type UserHandler struct {
	userStore  store.UserStore
	jwtService auth.JWTService
	hasher     auth.PasswordHasher
	verifier   auth.PasswordVerifier
	logger     *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(
	userStore store.UserStore,
	jwtService auth.JWTService,
	hasher auth.PasswordHasher,
	verifier auth.PasswordVerifier,
	log *slog.Logger,
) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore:  userStore,
		jwtService: jwtService,
		hasher:     hasher,
		verifier:   verifier,
		logger:     log.With(slog.String("component", "user_handler")),
	}
}

// Register handles POST /users.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if verr := ValidateRequest(req); verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	// Pre-check for the friendlier message; the unique constraint on email
	// is the authoritative guard against the check-then-insert race.
	_, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err == nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, msgEmailRegistered)
		return
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Error("failed to check email", "error", err)
		HandleServiceError(w, r, err)
		return
	}

	hashedPassword, err := h.hasher.Hash(req.Password)
	if err != nil {
		log.Error("failed to hash password", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	user, err := domain.NewUser(req.Email, hashedPassword, req.FullName)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.userStore.Create(r.Context(), user); err != nil {
		if errors.Is(err, store.ErrEmailExists) {
			shared.RespondWithError(w, r, http.StatusBadRequest, msgEmailRegistered)
			return
		}
		log.Error("failed to create user", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, struct{}{})
}

// Authenticate handles POST /users/auth.
// Unknown email and wrong password both yield the same 401 message.
func (h *UserHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AuthenticateRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if verr := ValidateRequest(req); verr != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, verr.Error())
		return
	}

	user, err := h.userStore.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}
		log.Error("failed to get user by email", "error", err)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized, msgInvalidCredentials)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		log.Error("failed to generate token", "error", err, "user_id", user.ID)
		shared.RespondWithError(w, r, http.StatusInternalServerError, msgUnexpectedError)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, AccessTokenResponse{AccessToken: token})
}
