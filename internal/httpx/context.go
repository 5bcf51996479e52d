package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	userIDKey    contextKey = "userID"
	requestIDKey contextKey = "requestID"
	debugKey     contextKey = "debug"
	userSlotKey  contextKey = "userSlot"
)

// UserIDFrom retrieves the authenticated user ID from the request context.
func UserIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(userIDKey).(string); ok {
		return v
	}
	return ""
}

// ContextWithUser returns a new context carrying the authenticated user ID.
func ContextWithUser(ctx context.Context, userID string) context.Context {
	if slot, ok := ctx.Value(userSlotKey).(*string); ok {
		*slot = userID
	}
	return context.WithValue(ctx, userIDKey, userID)
}

// withUserSlot lets an outer middleware observe the user ID that an inner
// auth middleware resolves.
func withUserSlot(ctx context.Context, slot *string) context.Context {
	return context.WithValue(ctx, userSlotKey, slot)
}

func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func debugFrom(r *http.Request) bool {
	v, _ := r.Context().Value(debugKey).(bool)
	return v
}

// DebugMiddleware marks requests so that error responses carry internal error
// details and stack traces. Only enabled in development.
func DebugMiddleware(enabled bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), debugKey, enabled)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
