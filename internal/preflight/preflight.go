package preflight

import (
	"context"
	"path/filepath"

	"hoarder/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the checks that apply to cfg. Checks for disabled features
// are skipped.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result

	results = append(results, CheckTMDB(ctx, cfg.TMDB))

	if cfg.LookupCache.Enabled {
		results = append(results, CheckWritableLocation("Lookup cache", filepath.Dir(cfg.LookupCache.Path)))
	}

	if cfg.Logging.Dir != "" {
		results = append(results, CheckWritableLocation("Log directory", cfg.Logging.Dir))
	}

	return results
}
