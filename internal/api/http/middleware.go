package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"carebook-backend/internal/logger"
	"carebook-backend/internal/security"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// RequestIDMiddleware tags every request with a UUID and logs it on
// completion.
func RequestIDMiddleware() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set("X-Request-ID", requestID)

			ctx := context.WithValue(r.Context(), requestIDKey, requestID)
			start := time.Now()
			next.ServeHTTP(w, r.WithContext(ctx))
			logger.Debug("Request handled",
				"request_id", requestID,
				"method", r.Method,
				"path", r.URL.Path,
				"duration_ms", time.Since(start).Milliseconds(),
			)
		})
	}
}

// AuthMiddleware validates the Bearer access token and places the
// participant's ID in the request context.
func AuthMiddleware(tokens security.TokenManager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				respondError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}
			tokenString, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				respondError(w, http.StatusUnauthorized, "malformed authorization header")
				return
			}

			claims, err := tokens.ValidateToken(tokenString)
			if err != nil {
				respondServiceError(w, err)
				return
			}
			if claims.Type != security.TokenTypeAccess {
				respondServiceError(w, security.ErrWrongTokenType)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, claims.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
