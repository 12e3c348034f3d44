package fileutil

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"hoarder/internal/organizer"
	"hoarder/internal/services"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestApplyNoop(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "a")

	outcome, err := NewMover(nil).Apply(context.Background(), organizer.RenamePlan{Source: src, Destination: src})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if outcome != Unchanged {
		t.Fatalf("outcome = %v, want unchanged", outcome)
	}
}

func TestApplyRenamesAndCreatesDirectories(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "clip.mkv")
	dst := filepath.Join(dir, "2020", "Movie.(2020)", "Movie.(2020).mkv")
	writeFile(t, src, "video")

	outcome, err := NewMover(nil).Apply(context.Background(), organizer.RenamePlan{Source: src, Destination: dst})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if outcome != Renamed {
		t.Fatalf("outcome = %v, want renamed", outcome)
	}
	if got := readFile(t, dst); got != "video" {
		t.Fatalf("destination content = %q", got)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source should be gone, stat err=%v", err)
	}
}

func TestApplyNeverOverwrites(t *testing.T) {
	for _, tc := range []struct {
		name   string
		rename func(src, dst string) error
	}{
		{"native", renameNoReplace},
		{"fallback", func(string, string) error { return errNoReplaceUnsupported }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			src := filepath.Join(dir, "new.jpg")
			dst := filepath.Join(dir, "IMG_20230615.jpg")
			writeFile(t, src, "new")
			writeFile(t, dst, "old")

			m := NewMover(nil)
			m.rename = tc.rename
			outcome, err := m.Apply(context.Background(), organizer.RenamePlan{Source: src, Destination: dst})
			var conflict *ConflictError
			if !errors.As(err, &conflict) {
				t.Fatalf("expected ConflictError, got %v", err)
			}
			if !errors.Is(err, os.ErrExist) || !errors.Is(err, services.ErrConflict) {
				t.Fatalf("conflict should match os.ErrExist and services.ErrConflict: %v", err)
			}
			if services.Skippable(err) {
				t.Fatal("conflicts are failures, not skips")
			}
			if outcome != Unchanged {
				t.Fatalf("outcome = %v, want unchanged", outcome)
			}
			if got := readFile(t, dst); got != "old" {
				t.Fatalf("destination overwritten: %q", got)
			}
			if got := readFile(t, src); got != "new" {
				t.Fatalf("source modified: %q", got)
			}
		})
	}
}

func TestApplyCrossDeviceCopies(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.jpg")
	dst := filepath.Join(dir, "2023", "2023-06-15.jpg")
	writeFile(t, src, "pixels")

	m := NewMover(nil)
	m.rename = func(src, dst string) error {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: syscall.EXDEV}
	}
	outcome, err := m.Apply(context.Background(), organizer.RenamePlan{Source: src, Destination: dst})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if outcome != Copied {
		t.Fatalf("outcome = %v, want copied", outcome)
	}
	if got := readFile(t, dst); got != "pixels" {
		t.Fatalf("destination content = %q", got)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source should be removed after verified copy, stat err=%v", err)
	}
}

func TestApplyMissingSource(t *testing.T) {
	dir := t.TempDir()
	_, err := NewMover(nil).Apply(context.Background(), organizer.RenamePlan{
		Source:      filepath.Join(dir, "missing.txt"),
		Destination: filepath.Join(dir, "x_missing.txt"),
	})
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if services.Skippable(err) {
		t.Fatalf("missing source should be a failure: %v", err)
	}
}

func TestApplyCanceledContext(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	writeFile(t, src, "a")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewMover(nil).Apply(ctx, organizer.RenamePlan{Source: src, Destination: filepath.Join(dir, "b.txt")})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if got := readFile(t, src); got != "a" {
		t.Fatalf("source changed: %q", got)
	}
}
