package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/avdeyev/ledger/pkg/utils"
)

type ContextKey string

// UserIDKey carries the authenticated ledger user id through the request
// context; every protected handler reads it.
const UserIDKey ContextKey = "userID"

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without a valid bearer token and injects
// the token's user id into the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	jwtService := &JWTService{}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
