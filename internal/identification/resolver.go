package identification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"hoarder/internal/capture"
	"hoarder/internal/logging"
	"hoarder/internal/services"
)

// Candidate is one ranked answer from a title lookup.
type Candidate struct {
	Title       string
	ReleaseDate string
}

// Lookup searches an external catalogue for a free-text query. Candidates are
// returned best first.
type Lookup interface {
	Search(ctx context.Context, query string) ([]Candidate, error)
}

// TitleRecord is the identity of a video: its canonical title and release date.
type TitleRecord struct {
	Title    string
	Released capture.Date
}

// Display renders "Title (Year)".
func (r TitleRecord) Display() string {
	return fmt.Sprintf("%s (%s)", r.Title, r.Released.YearString())
}

// Resolver identifies video files by cleaning their names into a query and
// taking the first lookup candidate.
type Resolver struct {
	lookup  Lookup
	logger  *slog.Logger
	timeout time.Duration
}

// NewResolver builds a resolver. A nil lookup is allowed and makes every
// resolution fail with a configuration error, which is how a missing TMDB key
// surfaces per video file without affecting anything else.
func NewResolver(lookup Lookup, logger *slog.Logger, timeout time.Duration) *Resolver {
	return &Resolver{
		lookup:  lookup,
		logger:  logging.NewComponentLogger(logger, "identify"),
		timeout: timeout,
	}
}

// Resolve returns the title record for the video at path. Every failure mode
// (empty query, no lookup, transport error, unusable candidate) is an error
// carrying a services marker; callers treat all of them as "no metadata".
func (r *Resolver) Resolve(ctx context.Context, path string) (TitleRecord, error) {
	query := QueryFromFilename(path)
	if query == "" {
		return TitleRecord{}, services.Wrap(services.ErrValidation, "identify", "build query", "file name is empty after cleaning", nil)
	}
	if r == nil || r.lookup == nil {
		return TitleRecord{}, services.Wrap(services.ErrConfiguration, "identify", "lookup", "no TMDB api key configured", nil)
	}

	lookupCtx := ctx
	if r.timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	logger := logging.WithContext(ctx, r.logger)
	start := time.Now()
	candidates, err := r.lookup.Search(lookupCtx, query)
	if err != nil {
		marker := services.ErrExternalTool
		if errors.Is(err, context.DeadlineExceeded) {
			marker = services.ErrTimeout
		}
		return TitleRecord{}, services.Wrap(marker, "identify", "search", query, err)
	}
	logger.Debug("title lookup completed",
		logging.String("query", query),
		logging.Int("candidates", len(candidates)),
		logging.Duration("latency", time.Since(start)),
	)

	record, err := firstCandidate(candidates)
	if err != nil {
		return TitleRecord{}, services.Wrap(services.ErrNotFound, "identify", "select candidate", query, err)
	}
	logger.Info("video identified",
		logging.Args(logging.DecisionAttrs("title_match", record.Display(), "first lookup candidate")...)...)
	return record, nil
}

func firstCandidate(candidates []Candidate) (TitleRecord, error) {
	if len(candidates) == 0 {
		return TitleRecord{}, errors.New("no candidates")
	}
	first := candidates[0]
	title := strings.TrimSpace(first.Title)
	if title == "" {
		return TitleRecord{}, errors.New("first candidate has no title")
	}
	released, err := capture.ParseISO(strings.TrimSpace(first.ReleaseDate))
	if err != nil {
		return TitleRecord{}, fmt.Errorf("first candidate release date %q: %w", first.ReleaseDate, err)
	}
	return TitleRecord{Title: title, Released: released}, nil
}
