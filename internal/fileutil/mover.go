package fileutil

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"hoarder/internal/logging"
	"hoarder/internal/organizer"
	"hoarder/internal/services"
)

// Outcome describes what Apply did with a plan.
type Outcome int

const (
	// Unchanged means the plan was a no-op.
	Unchanged Outcome = iota
	// Renamed means the file moved with a single rename.
	Renamed
	// Copied means the file crossed a filesystem boundary and was copied,
	// verified and removed from its source.
	Copied
)

func (o Outcome) String() string {
	switch o {
	case Renamed:
		return "renamed"
	case Copied:
		return "copied"
	default:
		return "unchanged"
	}
}

// ConflictError reports a destination that already exists. Both files are
// left untouched.
type ConflictError struct {
	Source      string
	Destination string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("destination %q already exists (source %q left in place)", e.Destination, e.Source)
}

// Unwrap lets errors.Is match both os.ErrExist and services.ErrConflict.
func (e *ConflictError) Unwrap() []error {
	return []error{services.ErrConflict, os.ErrExist}
}

// errNoReplaceUnsupported signals that the platform or filesystem cannot
// rename without replacing, so the mover falls back to check-then-rename.
var errNoReplaceUnsupported = errors.New("no-replace rename unsupported")

// Mover executes rename plans without ever overwriting an existing file.
type Mover struct {
	logger *slog.Logger
	rename func(src, dst string) error
}

// NewMover builds a mover that logs through logger.
func NewMover(logger *slog.Logger) *Mover {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Mover{
		logger: logging.NewComponentLogger(logger, "mover"),
		rename: renameNoReplace,
	}
}

// Apply performs plan. The check-then-rename fallback used where no-replace
// renames are unavailable leaves a window in which a concurrent writer can
// create the destination; within one run the planner never hands out the same
// destination twice.
func (m *Mover) Apply(ctx context.Context, plan organizer.RenamePlan) (Outcome, error) {
	if plan.Noop() {
		return Unchanged, nil
	}
	if err := ctx.Err(); err != nil {
		return Unchanged, err
	}
	if _, err := os.Lstat(plan.Source); err != nil {
		return Unchanged, fmt.Errorf("stat source: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(plan.Destination), 0o755); err != nil {
		return Unchanged, fmt.Errorf("create destination directory: %w", err)
	}

	err := m.rename(plan.Source, plan.Destination)
	if errors.Is(err, errNoReplaceUnsupported) {
		err = renameChecked(plan.Source, plan.Destination)
	}
	switch {
	case err == nil:
		return Renamed, nil
	case errors.Is(err, os.ErrExist):
		return Unchanged, &ConflictError{Source: plan.Source, Destination: plan.Destination}
	case isCrossDevice(err):
		return m.copyAcross(ctx, plan)
	default:
		return Unchanged, fmt.Errorf("rename: %w", err)
	}
}

func (m *Mover) copyAcross(ctx context.Context, plan organizer.RenamePlan) (Outcome, error) {
	logger := logging.WithContext(ctx, m.logger)
	logging.WarnWithContext(logger, "destination on another filesystem; copying instead of renaming",
		"cross_device_move",
		logging.String(logging.FieldSourcePath, plan.Source),
		logging.String(logging.FieldDestinationPath, plan.Destination),
		logging.String(logging.FieldImpact, "move is not atomic; source removed after verified copy"),
		logging.String(logging.FieldErrorHint, "keep source and destination on one filesystem for atomic moves"),
	)

	if err := CopyFileVerified(plan.Source, plan.Destination); err != nil {
		if errors.Is(err, os.ErrExist) {
			return Unchanged, &ConflictError{Source: plan.Source, Destination: plan.Destination}
		}
		return Unchanged, fmt.Errorf("copy across filesystems: %w", err)
	}
	if err := os.Remove(plan.Source); err != nil {
		return Copied, fmt.Errorf("remove source after copy: %w", err)
	}
	return Copied, nil
}

func renameChecked(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: os.ErrExist}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return os.Rename(src, dst)
}
