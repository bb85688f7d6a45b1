package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/hangyeol/codestudy-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateSessionToken(token string) (uuid.UUID, error)
}

// SessionAuth resolves the bearer token into a session ID and stores it
// in the request context. Requests without a valid token are rejected;
// session creation and health endpoints are mounted outside this
// middleware.
func SessionAuth(validator tokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}
			sessionID, err := validator.ValidateSessionToken(token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithSessionID(r.Context(), sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}
