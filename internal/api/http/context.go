package http

import (
	"context"
	"errors"
)

type contextKey string

const (
	userIDKey    contextKey = "user_id"
	requestIDKey contextKey = "request_id"
)

var ErrNoUserInContext = errors.New("no authenticated user in context")

// UserIDFromContext returns the authenticated participant's ID, set by the
// auth middleware.
func UserIDFromContext(ctx context.Context) (int64, error) {
	id, ok := ctx.Value(userIDKey).(int64)
	if !ok {
		return 0, ErrNoUserInContext
	}
	return id, nil
}

// RequestIDFromContext returns the request ID set by the request-ID
// middleware, or an empty string.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
