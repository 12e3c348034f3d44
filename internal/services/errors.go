package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrExternalTool  = errors.New("external tool error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrNotFound      = errors.New("not found")
	ErrTimeout       = errors.New("timeout")
	ErrTransient     = errors.New("transient failure")
	ErrConflict      = errors.New("destination conflict")
)

// Wrap builds an error message that includes stage context while tagging it with
// the provided marker for later status classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, stage, operation, message string, err error) error {
	detail := buildDetail(stage, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Skippable reports whether a per-file error means "nothing to do" rather than
// a failure. Missing metadata and missing credentials leave the file in place
// and are reported as skips; filesystem and transport problems are failures.
func Skippable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrValidation), errors.Is(err, ErrConfiguration), errors.Is(err, ErrNotFound):
		return true
	default:
		return false
	}
}

// Hint returns a short operator-facing next step for the marker carried by err.
func Hint(err error) string {
	switch {
	case errors.Is(err, ErrConfiguration):
		return "set tmdb.api_key in the config file or export TMDB_API_KEY"
	case errors.Is(err, ErrConflict):
		return "rename or remove the existing destination file and rerun"
	case errors.Is(err, ErrExternalTool), errors.Is(err, ErrTimeout):
		return "check network access to TMDB and rerun"
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrValidation):
		return "rename the file so its name carries a date or a recognizable title"
	default:
		return "check file permissions and free space"
	}
}

func buildDetail(stage, operation, message string) string {
	parts := make([]string, 0, 3)
	if stage = strings.TrimSpace(stage); stage != "" {
		parts = append(parts, stage)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
