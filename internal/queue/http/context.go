// Package http provides HTTP handlers and middleware for queue operations.
package http

import (
	"context"
)

// Caller identifies the staff member or kiosk acting on the queue. Identity is
// asserted by the upstream gateway via request headers.
type Caller struct {
	ID   string
	Role string
}

// callerKey is a context key type for storing the request caller.
type callerKey struct{}

// WithCaller stores the caller in the context.
func WithCaller(ctx context.Context, caller Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, caller)
}

// GetCaller retrieves the caller from the context.
// Returns (caller, true) if present, or (Caller{}, false) if not set.
func GetCaller(ctx context.Context) (Caller, bool) {
	caller, ok := ctx.Value(callerKey{}).(Caller)
	return caller, ok
}
