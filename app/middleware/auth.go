package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"chatter/app/services"
)

// Context keys for storing user information
type contextKey string

const UserIDKey contextKey = "user_id"

// RequireAuth enforces bearer-token authentication for protected routes.
// Unauthenticated requests are rejected with 401 before any handler logic
// runs; on success the verified user id is injected into the request
// context.
func RequireAuth(auth *services.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeAuthError(w, "Missing Authorization header")
				return
			}

			if !strings.HasPrefix(authHeader, "Bearer ") {
				writeAuthError(w, "Invalid Authorization header format. Expected: Bearer <token>")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			userID, err := auth.VerifyToken(token)
			if err != nil {
				log.Printf("auth failure: method=%s path=%s error=%v", r.Method, r.URL.Path, err)
				writeAuthError(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID extracts the authenticated user id from the request context. It
// returns "" when the request did not pass through RequireAuth.
func UserID(r *http.Request) string {
	id, _ := r.Context().Value(UserIDKey).(string)
	return id
}

func writeAuthError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
