package batch

import (
	"hoarder/internal/media"
)

// Status is the per-file outcome reported to the user.
type Status string

const (
	StatusRenamed   Status = "renamed"
	StatusUnchanged Status = "unchanged"
	StatusSkipped   Status = "skipped"
	StatusFailed    Status = "failed"
)

// Result is the outcome of processing one input file.
type Result struct {
	Source      string
	Destination string
	Kind        media.Kind
	Status      Status
	// Reason is a short human-readable explanation for skipped and failed
	// files, and for unchanged files where one applies.
	Reason string
	Err    error
}

// Summary counts results per status.
type Summary struct {
	Total     int
	Renamed   int
	Unchanged int
	Skipped   int
	Failed    int
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Total++
		switch r.Status {
		case StatusRenamed:
			s.Renamed++
		case StatusUnchanged:
			s.Unchanged++
		case StatusSkipped:
			s.Skipped++
		default:
			s.Failed++
		}
	}
	return s
}
