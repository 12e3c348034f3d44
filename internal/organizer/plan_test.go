package organizer_test

import (
	"errors"
	"path/filepath"
	"testing"

	"hoarder/internal/capture"
	"hoarder/internal/identification"
	"hoarder/internal/media"
	"hoarder/internal/naming"
	"hoarder/internal/organizer"
	"hoarder/internal/services"
)

func mustDate(t *testing.T, iso string) capture.Date {
	t.Helper()
	d, err := capture.ParseISO(iso)
	if err != nil {
		t.Fatalf("ParseISO(%q): %v", iso, err)
	}
	return d
}

func TestPlanFlatImage(t *testing.T) {
	dir := t.TempDir()
	p := organizer.NewPlanner(naming.NewCounter(), organizer.Options{Mode: organizer.ModeFlat})
	src := filepath.Join(dir, "vacation.20230615.jpeg")

	plan, err := p.Plan(src, media.KindImage, organizer.Metadata{Date: mustDate(t, "2023-06-15")})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.Join(dir, "IMG_20230615.jpg"); plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}
}

func TestPlanFlatImageCollisionsGetSuffix(t *testing.T) {
	dir := t.TempDir()
	p := organizer.NewPlanner(naming.NewCounter(), organizer.Options{})
	meta := organizer.Metadata{Date: mustDate(t, "2023-06-15")}

	first, err := p.Plan(filepath.Join(dir, "a.jpg"), media.KindImage, meta)
	if err != nil {
		t.Fatalf("Plan a: %v", err)
	}
	second, err := p.Plan(filepath.Join(dir, "b.jpg"), media.KindImage, meta)
	if err != nil {
		t.Fatalf("Plan b: %v", err)
	}
	if got := filepath.Base(first.Destination); got != "IMG_20230615.jpg" {
		t.Fatalf("first = %q", got)
	}
	if got := filepath.Base(second.Destination); got != "IMG_20230615-02.jpg" {
		t.Fatalf("second = %q", got)
	}

	again, err := p.Plan(filepath.Join(dir, "b.jpg"), media.KindImage, meta)
	if err != nil {
		t.Fatalf("Plan b again: %v", err)
	}
	if again.Destination != second.Destination {
		t.Fatalf("replanning changed destination: %q vs %q", again.Destination, second.Destination)
	}
}

func TestPlanCustomImagePrefix(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{ImagePrefix: "PHOTO_"})
	plan, err := p.Plan("/photos/x.png", media.KindImage, organizer.Metadata{Date: mustDate(t, "2020-01-02")})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if plan.Destination != filepath.FromSlash("/photos/PHOTO_20200102.jpg") {
		t.Fatalf("destination = %q", plan.Destination)
	}
}

func TestPlanOrganizedImage(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{Mode: organizer.ModeOrganized})
	date := mustDate(t, "2019-12-31")

	plan, err := p.Plan("/photos/IMG_1.png", media.KindImage, organizer.Metadata{Date: date})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.FromSlash("/photos/2019/2019-12-31.png"); plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}

	// Already bucketed: a fresh run plans a no-op.
	rerun := organizer.NewPlanner(nil, organizer.Options{Mode: organizer.ModeOrganized})
	plan, err = rerun.Plan("/photos/2019/2019-12-31.png", media.KindImage, organizer.Metadata{Date: date})
	if err != nil {
		t.Fatalf("Plan rerun: %v", err)
	}
	if !plan.Noop() {
		t.Fatalf("expected no-op, got %q -> %q", plan.Source, plan.Destination)
	}
}

func TestPlanFlatVideo(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{})
	meta := organizer.Metadata{Title: identification.TitleRecord{Title: "Movie Title", Released: mustDate(t, "2020-03-01")}}

	plan, err := p.Plan("/media/Movie.Title.2020.1080p.mkv", media.KindVideo, meta)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.FromSlash("/media/Movie.Title.(2020).mkv"); plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}
}

func TestPlanOrganizedVideo(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{Mode: organizer.ModeOrganized})
	meta := organizer.Metadata{Title: identification.TitleRecord{Title: "Movie Title", Released: mustDate(t, "2020-03-01")}}

	plan, err := p.Plan("/media/Movie.Title.2020.1080p.mkv", media.KindVideo, meta)
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	want := filepath.FromSlash("/media/2020/Movie.Title.(2020)/Movie.Title.(2020).mkv")
	if plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}

	rerun := organizer.NewPlanner(nil, organizer.Options{Mode: organizer.ModeOrganized})
	plan, err = rerun.Plan(want, media.KindVideo, meta)
	if err != nil {
		t.Fatalf("Plan rerun: %v", err)
	}
	if !plan.Noop() {
		t.Fatalf("expected no-op, got %q", plan.Destination)
	}
}

func TestPlanPlainFlat(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{Prefix: "archive_"})
	plan, err := p.Plan("/docs/my  notes.txt", media.KindPlain, organizer.Metadata{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.FromSlash("/docs/archive_my  notes.txt"); plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}

	p = organizer.NewPlanner(nil, organizer.Options{Suffix: "_old"})
	plan, err = p.Plan("/docs/report.pdf", media.KindPlain, organizer.Metadata{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.FromSlash("/docs/report_old.pdf"); plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}
}

func TestPlanPlainWithoutAffixesIsNoop(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{})
	plan, err := p.Plan("/docs/report.pdf", media.KindPlain, organizer.Metadata{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if !plan.Noop() {
		t.Fatalf("expected no-op, got %q", plan.Destination)
	}
}

func TestPlanFlatWithoutMetadataFallsThrough(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{Prefix: "x_"})
	plan, err := p.Plan("/media/clip.mov", media.KindVideo, organizer.Metadata{})
	if err != nil {
		t.Fatalf("Plan: %v", err)
	}
	if want := filepath.FromSlash("/media/x_clip.mov"); plan.Destination != want {
		t.Fatalf("destination = %q, want %q", plan.Destination, want)
	}
}

func TestPlanOrganizedSkips(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{Mode: organizer.ModeOrganized})
	cases := []struct {
		name string
		kind media.Kind
		meta organizer.Metadata
	}{
		{"plain", media.KindPlain, organizer.Metadata{}},
		{"image without date", media.KindImage, organizer.Metadata{}},
		{"video without title", media.KindVideo, organizer.Metadata{}},
		{"video with unusable title", media.KindVideo, organizer.Metadata{
			Title: identification.TitleRecord{Title: "?!", Released: mustDate(t, "2001-01-01")},
		}},
	}
	for _, tc := range cases {
		_, err := p.Plan("/media/file.bin", tc.kind, tc.meta)
		if !errors.Is(err, organizer.ErrSkipped) {
			t.Fatalf("%s: expected ErrSkipped, got %v", tc.name, err)
		}
		if !services.Skippable(err) {
			t.Fatalf("%s: expected skippable error, got %v", tc.name, err)
		}
	}
}

func TestPlanUnknownKind(t *testing.T) {
	p := organizer.NewPlanner(nil, organizer.Options{})
	if _, err := p.Plan("/x", media.Kind(99), organizer.Metadata{}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}
