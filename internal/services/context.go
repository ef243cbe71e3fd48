package services

import "context"

type contextKey string

const (
	runIDKey contextKey = "run_id"
	stateKey contextKey = "state"
)

// WithRunID annotates context with the conversion run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithState annotates context with the assembly state name.
func WithState(ctx context.Context, state string) context.Context {
	if state == "" {
		return ctx
	}
	return context.WithValue(ctx, stateKey, state)
}

// StateFromContext returns the assembly state name if present.
func StateFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(stateKey)
	if str, ok := v.(string); ok && str != "" {
		return str, true
	}
	return "", false
}
