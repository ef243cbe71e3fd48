package services_test

import (
	"context"
	"testing"

	"bookbinder/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithState(ctx, "encoding")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if state, ok := services.StateFromContext(ctx); !ok || state != "encoding" {
		t.Fatalf("unexpected state: %v %v", state, ok)
	}
}

func TestStateBlankPreservesContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithState(ctx, "")
	if _, ok := services.StateFromContext(ctx); ok {
		t.Fatal("expected no state value")
	}
	ctx = services.WithRunID(ctx, "")
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id value")
	}
}
