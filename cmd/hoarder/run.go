package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"hoarder/internal/batch"
	"hoarder/internal/config"
	"hoarder/internal/fileutil"
	"hoarder/internal/identification"
	"hoarder/internal/identification/tmdb"
	"hoarder/internal/logging"
	"hoarder/internal/lookupcache"
	"hoarder/internal/naming"
	"hoarder/internal/organizer"
)

func runBatch(cmd *cobra.Command, ctx *commandContext, flags runFlags, args []string) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	applyOverrides(cfg, flags)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	if !cfg.HasTMDBKey() && !flags.noPrompt && stdinIsTerminal() {
		if err := promptAndSaveAPIKey(cmd, ctx, cfg); err != nil {
			logging.WarnWithContext(logger, "tmdb api key not saved", "api_key_save_failed",
				logging.Error(err),
				logging.String(logging.FieldImpact, "key is used for this run only"),
				logging.String(logging.FieldErrorHint, "run hoarder config set-api-key"),
			)
		}
	}

	runCtx := cmd.Context()
	if runCtx == nil {
		runCtx = context.Background()
	}
	lookup, closeLookup := buildLookup(runCtx, cfg, logger)
	defer closeLookup()

	timeout := time.Duration(cfg.TMDB.TimeoutSeconds) * time.Second
	resolver := identification.NewResolver(lookup, logger, timeout)

	mode := organizer.ModeFlat
	if flags.directory {
		mode = organizer.ModeOrganized
	}
	planner := organizer.NewPlanner(naming.NewCounter(), organizer.Options{
		Mode:        mode,
		Prefix:      flags.prefix,
		Suffix:      flags.suffix,
		ImagePrefix: cfg.Rename.ImagePrefix,
	})
	runner := batch.NewRunner(planner, resolver, fileutil.NewMover(logger), logger, cfg.Rename.Workers)

	paths, failures := batch.Expand(args, mode == organizer.ModeOrganized)

	out := cmd.OutOrStdout()
	printer := newResultPrinter(out, shouldColorize(out))
	for _, failure := range failures {
		printer.Print(failure)
	}

	progress := newProgress(cmd.ErrOrStderr(), len(paths))
	results := runner.Run(runCtx, paths, func(res batch.Result) {
		progress.Clear()
		printer.Print(res)
		progress.Add()
	})
	progress.Finish()

	all := append(failures, results...)
	fmt.Fprintln(out, renderSummary(batch.Summarize(all)))
	return nil
}

func applyOverrides(cfg *config.Config, flags runFlags) {
	if flags.workers > 0 {
		cfg.Rename.Workers = flags.workers
	}
	if level := strings.TrimSpace(flags.logLevel); level != "" {
		cfg.Logging.Level = level
	}
	if format := strings.TrimSpace(flags.logFormat); format != "" {
		cfg.Logging.Format = format
	}
}

func newLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, error) {
	opts, err := logging.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	opts.Stderr = cmd.ErrOrStderr()
	return logging.New(opts)
}

// buildLookup wires TMDB behind the SQLite cache. A nil Lookup is returned
// when no key is configured; the resolver reports that per video file.
func buildLookup(ctx context.Context, cfg *config.Config, logger *slog.Logger) (identification.Lookup, func()) {
	noop := func() {}
	if !cfg.HasTMDBKey() {
		logging.WarnWithContext(logger, "no tmdb api key configured", "tmdb_key_missing",
			logging.String(logging.FieldImpact, "video files cannot be identified"),
			logging.String(logging.FieldErrorHint, "set tmdb.api_key in the config file or export TMDB_API_KEY"),
		)
		return nil, noop
	}

	client, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(time.Duration(cfg.TMDB.TimeoutSeconds)*time.Second),
		tmdb.WithRateLimit(cfg.TMDB.RequestsPerSecond),
	)
	if err != nil {
		logging.WarnWithContext(logger, "tmdb client unavailable", "tmdb_client_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "video files cannot be identified"),
		)
		return nil, noop
	}
	var lookup identification.Lookup = identification.TMDBLookup{Client: client}

	if !cfg.LookupCache.Enabled {
		return lookup, noop
	}
	ttl := time.Duration(cfg.LookupCache.TTLHours) * time.Hour
	store, err := lookupcache.Open(ctx, cfg.LookupCache.Path, ttl)
	if err != nil {
		logging.WarnWithContext(logger, "lookup cache unavailable", "lookup_cache_open_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "every title is fetched from TMDB"),
			logging.String(logging.FieldErrorHint, "check lookup_cache.path or delete the cache file"),
		)
		return lookup, noop
	}
	return lookupcache.NewCached(lookup, store, logger), func() { _ = store.Close() }
}
