package main

import (
	"io"

	"github.com/schollz/progressbar/v3"
)

// progress wraps a progress bar that is only drawn on terminals. The zero
// value is a no-op.
type progress struct {
	bar *progressbar.ProgressBar
}

func newProgress(w io.Writer, total int) progress {
	if total <= 1 || !shouldColorize(w) {
		return progress{}
	}
	return progress{bar: progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionSetWidth(20),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionClearOnFinish(),
	)}
}

func (p progress) Add() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Clear erases the bar so a result line can be printed cleanly.
func (p progress) Clear() {
	if p.bar != nil {
		_ = p.bar.Clear()
	}
}

func (p progress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
