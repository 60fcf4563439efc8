package logger

import (
	"context"

	"github.com/google/uuid"
)

type actionIDKey struct{}

// WithActionID adds an action ID to the context.
func WithActionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, actionIDKey{}, id)
}

// NewAction returns a context carrying a freshly generated action ID.
func NewAction(ctx context.Context) context.Context {
	return WithActionID(ctx, uuid.NewString())
}

// ActionID retrieves the action ID from the context.
// Returns the action ID and a boolean indicating whether it was found.
func ActionID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(actionIDKey{}).(string)
	return id, ok && id != ""
}
