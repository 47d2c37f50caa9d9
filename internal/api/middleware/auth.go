package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/hoangmn/catalog-api/internal/api/shared"
	"github.com/hoangmn/catalog-api/internal/domain"
	"github.com/hoangmn/catalog-api/internal/platform/logger"
	"github.com/hoangmn/catalog-api/internal/service/auth"
	"github.com/hoangmn/catalog-api/internal/store"
)

// unauthenticatedMessage is the single message for every authentication
// failure: missing header, bad format, invalid or expired token, and a
// token whose subject no longer resolves to a user.
const unauthenticatedMessage = "User needs to authenticate"

// AuthMiddleware resolves the caller's identity from the Authorization
// header: it verifies the bearer token and loads the user record the
// token's subject refers to.
type AuthMiddleware struct {
	jwtService auth.JWTService
	userStore  store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, userStore store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userStore:  userStore,
	}
}

// Authenticate validates the bearer token, resolves the subject to an
// existing user, and adds that user to the request context. Routes behind
// this middleware can assume a fully resolved caller identity.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			log.Debug("token validation failed", "error", err)
			shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
			return
		}

		// The subject must resolve to a live user at verification time.
		user, err := m.userStore.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if store.IsNotFoundError(err) {
				log.Debug("token subject does not resolve to a user",
					"user_id", claims.UserID)
				shared.RespondWithError(w, r, http.StatusUnauthorized, unauthenticatedMessage)
				return
			}
			log.Error("failed to load user for token subject", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		ctx := context.WithValue(r.Context(), shared.CurrentUserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// CurrentUser extracts the authenticated user from the request context.
// Returns the user and a boolean indicating if one was found.
func CurrentUser(r *http.Request) (*domain.User, bool) {
	user, ok := r.Context().Value(shared.CurrentUserContextKey).(*domain.User)
	return user, ok
}
