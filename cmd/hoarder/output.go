package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"hoarder/internal/batch"
)

type resultPrinter struct {
	out     io.Writer
	renamed *color.Color
	skipped *color.Color
	failed  *color.Color
}

func newResultPrinter(out io.Writer, colorize bool) *resultPrinter {
	p := &resultPrinter{
		out:     out,
		renamed: color.New(color.FgGreen),
		skipped: color.New(color.FgYellow),
		failed:  color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.renamed, p.skipped, p.failed} {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes one line for res.
func (p *resultPrinter) Print(res batch.Result) {
	fmt.Fprintln(p.out, p.format(res))
}

func (p *resultPrinter) format(res batch.Result) string {
	switch res.Status {
	case batch.StatusRenamed:
		return p.renamed.Sprintf("renamed   %s -> %s", res.Source, res.Destination)
	case batch.StatusUnchanged:
		return fmt.Sprintf("unchanged %s", res.Source)
	case batch.StatusSkipped:
		return p.skipped.Sprintf("skipped   %s (%s)", res.Source, res.Reason)
	default:
		line := fmt.Sprintf("failed    %s (%s", res.Source, res.Reason)
		if res.Err != nil {
			line += ": " + res.Err.Error()
		}
		return p.failed.Sprint(line + ")")
	}
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
