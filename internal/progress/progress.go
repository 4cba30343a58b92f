// Package progress renders processing progress on stderr, either as a
// live bar or as periodic plain-text lines for non-interactive use.
package progress

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Reporter receives running totals during a pass and is finished once at
// the end.
type Reporter interface {
	// Observe is called once per processed line with the running totals.
	Observe(linesProcessed, filesFound int)

	// Finish closes out the display.
	Finish()
}

// NewBar creates a bar reporter sized to totalLines, drawing on stderr.
func NewBar(totalLines int) Reporter {
	bar := progressbar.NewOptions(totalLines,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Processing"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("lines"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer: "█", SaucerHead: "█", SaucerPadding: "░",
			BarStart: "[", BarEnd: "]",
		}),
	)
	return &barReporter{bar: bar}
}

type barReporter struct {
	bar   *progressbar.ProgressBar
	lines int
}

func (r *barReporter) Observe(linesProcessed, filesFound int) {
	delta := linesProcessed - r.lines
	r.lines = linesProcessed
	_ = r.bar.Add(delta)
}

func (r *barReporter) Finish() {
	_ = r.bar.Finish()
	fmt.Fprintln(os.Stderr)
}

// NewInterval creates a reporter that prints a progress line to w every
// interval lines.
func NewInterval(w io.Writer, interval int) Reporter {
	return &intervalReporter{w: w, interval: interval}
}

type intervalReporter struct {
	w        io.Writer
	interval int
}

func (r *intervalReporter) Observe(linesProcessed, filesFound int) {
	if r.interval > 0 && linesProcessed%r.interval == 0 {
		fmt.Fprintf(r.w, "[Progress: %d lines processed, %d files found]\n",
			linesProcessed, filesFound)
	}
}

func (r *intervalReporter) Finish() {}
