package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hoarder/internal/capture"
	"hoarder/internal/fileutil"
	"hoarder/internal/identification"
	"hoarder/internal/logging"
	"hoarder/internal/media"
	"hoarder/internal/organizer"
	"hoarder/internal/services"
)

// TitleResolver identifies video files.
type TitleResolver interface {
	Resolve(ctx context.Context, path string) (identification.TitleRecord, error)
}

// Planner computes destinations.
type Planner interface {
	Plan(path string, kind media.Kind, meta organizer.Metadata) (organizer.RenamePlan, error)
}

// Mover executes plans.
type Mover interface {
	Apply(ctx context.Context, plan organizer.RenamePlan) (fileutil.Outcome, error)
}

// Runner drives one batch: every path goes through classify, metadata
// extraction, planning and the move, on a bounded pool of workers.
type Runner struct {
	planner  Planner
	resolver TitleResolver
	mover    Mover
	logger   *slog.Logger
	workers  int
}

// NewRunner wires a runner. workers <= 0 means runtime.NumCPU().
func NewRunner(planner Planner, resolver TitleResolver, mover Mover, logger *slog.Logger, workers int) *Runner {
	if logger == nil {
		logger = logging.NewNop()
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		planner:  planner,
		resolver: resolver,
		mover:    mover,
		logger:   logging.NewComponentLogger(logger, "batch"),
		workers:  workers,
	}
}

// Run processes paths and returns one Result per path, in input order. No
// single file's failure stops the batch. onResult, when non-nil, is called
// once per file as it finishes; calls never overlap. Once ctx is canceled the
// files not yet started are reported failed.
func (r *Runner) Run(ctx context.Context, paths []string, onResult func(Result)) []Result {
	if _, ok := services.RequestIDFromContext(ctx); !ok {
		ctx = services.WithRequestID(ctx, uuid.NewString())
	}
	logger := logging.WithContext(ctx, r.logger)
	started := time.Now()
	logger.Info("batch started",
		logging.Int("files", len(paths)),
		logging.Int("workers", r.workers),
	)

	results := make([]Result, len(paths))
	var reportMu sync.Mutex
	var g errgroup.Group
	g.SetLimit(r.workers)
	for i, path := range paths {
		g.Go(func() error {
			var res Result
			if err := ctx.Err(); err != nil {
				res = Result{Source: path, Status: StatusFailed, Reason: "batch canceled", Err: err}
			} else {
				res = r.processFile(ctx, path)
			}
			results[i] = res
			if onResult != nil {
				reportMu.Lock()
				onResult(res)
				reportMu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	summary := Summarize(results)
	logger.Info("batch finished",
		logging.Int("renamed", summary.Renamed),
		logging.Int("unchanged", summary.Unchanged),
		logging.Int("skipped", summary.Skipped),
		logging.Int("failed", summary.Failed),
		logging.Duration("elapsed", time.Since(started)),
	)
	return results
}

func (r *Runner) processFile(ctx context.Context, path string) Result {
	ctx = services.WithSourcePath(ctx, path)
	logger := logging.WithContext(ctx, r.logger)

	kind := media.Classify(path)
	logger = logger.With(logging.String(logging.FieldFileKind, kind.String()))
	res := Result{Source: path, Destination: path, Kind: kind}

	meta, metaReason := r.extract(ctx, logger, path, kind)

	plan, err := r.planner.Plan(path, kind, meta)
	if err != nil {
		reason := "unsupported or unidentifiable"
		if metaReason != "" {
			reason = fmt.Sprintf("%s: %s", reason, metaReason)
		}
		if services.Skippable(err) {
			res.Status, res.Reason, res.Err = StatusSkipped, reason, err
			logger.Info("file skipped", logging.Args(append(
				logging.DecisionAttrs("rename", string(StatusSkipped), reason),
				logging.String(logging.FieldEventType, "file_skipped"),
			)...)...)
			return res
		}
		return r.fail(logger, res, "planning failed", err)
	}

	res.Destination = plan.Destination
	outcome, err := r.mover.Apply(services.WithStage(ctx, "move"), plan)
	if err != nil {
		return r.fail(logger, res, moveReason(err), err)
	}
	if outcome == fileutil.Unchanged {
		res.Status = StatusUnchanged
		res.Reason = metaReason
	} else {
		res.Status = StatusRenamed
	}
	logger.Info("file processed", logging.Args(append(
		logging.DecisionAttrs("rename", string(res.Status), outcome.String()),
		logging.String(logging.FieldDestinationPath, plan.Destination),
	)...)...)
	return res
}

// extract gathers whatever metadata applies to kind. The returned reason
// explains missing metadata and is empty when everything needed was found.
func (r *Runner) extract(ctx context.Context, logger *slog.Logger, path string, kind media.Kind) (organizer.Metadata, string) {
	var meta organizer.Metadata
	switch kind {
	case media.KindImage:
		date, source, ok := capture.Extract(path)
		if !ok {
			logger.Debug("no capture date found", logging.String(logging.FieldEventType, "capture_date_missing"))
			return meta, "no capture date"
		}
		meta.Date = date
		logger.Debug("capture date found",
			logging.String("capture_date", date.ISO()),
			logging.String("date_source", string(source)),
		)
	case media.KindVideo:
		if r.resolver == nil {
			return meta, "title lookup unavailable"
		}
		record, err := r.resolver.Resolve(services.WithStage(ctx, "identify"), path)
		if err != nil {
			logging.WarnWithContext(logger, "title lookup failed", "title_lookup_failed",
				logging.Error(err),
				logging.String(logging.FieldErrorHint, services.Hint(err)),
				logging.String(logging.FieldImpact, "video keeps its current name unless the plain rule applies"),
			)
			return meta, "no title match"
		}
		meta.Title = record
		logger.Debug("title resolved", logging.String("title", record.Display()))
	case media.KindPlain:
	default:
		return meta, fmt.Sprintf("unknown kind %s", kind)
	}
	return meta, ""
}

func (r *Runner) fail(logger *slog.Logger, res Result, reason string, err error) Result {
	res.Status, res.Reason, res.Err = StatusFailed, reason, err
	logging.ErrorWithContext(logger, "file failed", "file_failed",
		logging.Error(err),
		logging.String(logging.FieldDestinationPath, res.Destination),
		logging.String(logging.FieldErrorHint, services.Hint(err)),
	)
	return res
}

func moveReason(err error) string {
	var conflict *fileutil.ConflictError
	switch {
	case errors.As(err, &conflict):
		return "destination already exists"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "batch canceled"
	default:
		return "move failed"
	}
}
