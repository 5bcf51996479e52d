package httpx

import (
	"context"
	"net/http"
	"strings"

	"bookswap/internal/platform/crypto"
)

// UserVerifier confirms that the subject of a valid token still exists.
type UserVerifier interface {
	Exists(ctx context.Context, userID string) (bool, error)
}

func AuthMiddleware(secret string, verifier UserVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				JSONError(w, http.StatusUnauthorized, "Unauthorized request", nil)
				return
			}
			token := strings.TrimPrefix(authHeader, "Bearer ")

			claims, err := crypto.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "Invalid access token", nil)
				return
			}

			if verifier != nil {
				ok, err := verifier.Exists(r.Context(), claims.Sub)
				if err != nil {
					Error(w, r, err)
					return
				}
				if !ok {
					JSONError(w, http.StatusUnauthorized, "Invalid access request", nil)
					return
				}
			}

			ctx := ContextWithUser(r.Context(), claims.Sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
