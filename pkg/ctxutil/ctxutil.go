// Package ctxutil carries per-request identifiers through context so the
// transport middleware and services agree on the keys.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type sessionIDKey struct{}
type requestIDKey struct{}

// WithSessionID stores the authenticated study session ID.
func WithSessionID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromCtx returns the study session ID. The second result is
// false when the context has no usable ID (absent or uuid.Nil).
func SessionIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey{}).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID stores the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request correlation ID, or "" when absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
