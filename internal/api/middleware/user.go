package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/readlex/readlex-api/internal/api/shared"
)

// UserIDHeader carries the caller's identity. Real authentication lives in
// front of this service; here the header is trusted as-is.
const UserIDHeader = "X-User-ID"

// UserMiddleware resolves the user ID header into the request context.
// Requests without a valid UUID in the header are rejected with 401.
func UserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(UserIDHeader)
		if raw == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Missing "+UserIDHeader+" header")
			return
		}

		userID, err := uuid.Parse(raw)
		if err != nil || userID == uuid.Nil {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid "+UserIDHeader+" header")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
