package services_test

import (
	"context"
	"testing"

	"hoarder/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRequestID(ctx, "req-123")
	ctx = services.WithSourcePath(ctx, "/photos/a.jpg")
	ctx = services.WithStage(ctx, "plan")

	if rid, ok := services.RequestIDFromContext(ctx); !ok || rid != "req-123" {
		t.Fatalf("unexpected request id: %v %v", rid, ok)
	}
	if path, ok := services.SourcePathFromContext(ctx); !ok || path != "/photos/a.jpg" {
		t.Fatalf("unexpected source path: %v %v", path, ok)
	}
	if stage, ok := services.StageFromContext(ctx); !ok || stage != "plan" {
		t.Fatalf("unexpected stage: %v %v", stage, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithStage(ctx, "")
	ctx = services.WithSourcePath(ctx, "")
	ctx = services.WithRequestID(ctx, "")
	if _, ok := services.StageFromContext(ctx); ok {
		t.Fatal("expected no stage value")
	}
	if _, ok := services.SourcePathFromContext(ctx); ok {
		t.Fatal("expected no source path")
	}
	if _, ok := services.RequestIDFromContext(ctx); ok {
		t.Fatal("expected no request id")
	}
}
