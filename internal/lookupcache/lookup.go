package lookupcache

import (
	"context"
	"log/slog"
	"strings"

	"hoarder/internal/identification"
	"hoarder/internal/logging"
)

// Cached puts a Store in front of another Lookup. Hits return the single
// cached candidate; misses go to the wrapped lookup and a usable first
// candidate is written back. Cache read and write failures are logged and
// otherwise ignored.
type Cached struct {
	inner  identification.Lookup
	store  *Store
	logger *slog.Logger
}

// NewCached wraps inner with store.
func NewCached(inner identification.Lookup, store *Store, logger *slog.Logger) *Cached {
	return &Cached{
		inner:  inner,
		store:  store,
		logger: logging.NewComponentLogger(logger, "lookupcache"),
	}
}

// Search implements identification.Lookup.
func (c *Cached) Search(ctx context.Context, query string) ([]identification.Candidate, error) {
	logger := logging.WithContext(ctx, c.logger)
	entry, ok, err := c.store.Get(ctx, query)
	if err != nil {
		logging.WarnWithContext(logger, "lookup cache read failed", "lookup_cache_read_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "title is fetched from TMDB instead"),
		)
	}
	if ok {
		logger.Debug("lookup cache hit", logging.String("query", query))
		return []identification.Candidate{{Title: entry.Title, ReleaseDate: entry.ReleaseDate}}, nil
	}

	candidates, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	if len(candidates) > 0 && strings.TrimSpace(candidates[0].Title) != "" && strings.TrimSpace(candidates[0].ReleaseDate) != "" {
		first := candidates[0]
		if err := c.store.Put(ctx, query, first.Title, first.ReleaseDate); err != nil {
			logging.WarnWithContext(logger, "lookup cache write failed", "lookup_cache_write_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "the next run repeats this TMDB search"),
			)
		}
	}
	return candidates, nil
}
