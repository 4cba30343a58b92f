// Package processor drives the streaming pass over a tree dump: read a
// line, parse it, advance the path stack, classify, record, emit.
package processor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"treesift/pkg/classify"
	"treesift/pkg/parser"
	"treesift/pkg/stats"
)

// Sink receives per-item records in processing order. Formatting and
// destination are the sink's business; the processor only hands over
// finished items.
type Sink interface {
	WriteItem(item *parser.Item) error
}

// ProgressFunc is called once per raw line with the running totals.
type ProgressFunc func(linesProcessed, filesFound int)

// Processor runs one streaming pass. All run state (path stack,
// statistics) lives inside Process; a Processor may be reused for
// independent runs but never concurrently.
type Processor struct {
	classifier *classify.Classifier
	sink       Sink

	filesOnly bool
	progress  ProgressFunc
}

// Option configures processor behavior.
type Option func(*Processor)

// WithFilesOnly suppresses directory records in the sink output.
// Statistics still cover every line.
func WithFilesOnly(v bool) Option {
	return func(p *Processor) {
		p.filesOnly = v
	}
}

// WithProgress installs a per-line progress callback.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Processor) {
		p.progress = fn
	}
}

// WithSink installs the per-item record sink. Without one the run still
// produces statistics.
func WithSink(sink Sink) Option {
	return func(p *Processor) {
		p.sink = sink
	}
}

// New creates a processor classifying files against the given classifier.
func New(classifier *classify.Classifier, opts ...Option) *Processor {
	p := &Processor{classifier: classifier}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Result is the outcome of one processing run.
type Result struct {
	// Stats holds the run counters.
	Stats *stats.RunStats

	// Metadata provides context about the run.
	Metadata Metadata
}

// Metadata provides context about a processing run.
type Metadata struct {
	// Sources lists the files lines were read from, in first-seen order.
	Sources []string

	// StartTime is when the run began.
	StartTime time.Time

	// EndTime is when the run finished.
	EndTime time.Time

	// Interrupted reports a soft stop: the context was cancelled and
	// the counters cover only the lines processed before the cancel.
	Interrupted bool
}

// Process consumes the source until exhaustion or cancellation.
//
// Cancellation is checked only between lines, so each line is processed
// atomically; on cancel the partial result is returned with
// Metadata.Interrupted set and a nil error. Every other source failure
// is terminal.
func (p *Processor) Process(ctx context.Context, source parser.LineSource) (*Result, error) {
	result := &Result{
		Stats: stats.New(),
		Metadata: Metadata{
			StartTime: time.Now(),
		},
	}

	pathStack := parser.NewPathStack()
	sourcesSeen := make(map[string]bool)
	currentSource := ""

	for {
		select {
		case <-ctx.Done():
			result.Metadata.Interrupted = true
			result.Metadata.EndTime = time.Now()
			return result, nil
		default:
		}

		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			result.Metadata.Interrupted = true
			result.Metadata.EndTime = time.Now()
			return result, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading tree source: %w", err)
		}

		// Independent dump files never share lineage
		if line.Source != currentSource {
			if !sourcesSeen[line.Source] {
				sourcesSeen[line.Source] = true
				result.Metadata.Sources = append(result.Metadata.Sources, line.Source)
			}
			currentSource = line.Source
			pathStack.Reset()
		}

		result.Stats.ObserveLine()

		if err := p.processLine(line, pathStack, result.Stats); err != nil {
			return nil, err
		}

		if p.progress != nil {
			p.progress(result.Stats.TotalLines, result.Stats.FilesFound)
		}
	}

	result.Metadata.EndTime = time.Now()
	return result, nil
}

func (p *Processor) processLine(line *parser.RawLine, pathStack *parser.PathStack, st *stats.RunStats) error {
	if strings.TrimSpace(line.Text) == "" {
		return nil
	}

	item, ok := parser.ParseLine(line.LineNum, line.Text)
	if !ok {
		return nil
	}

	pathStack.Advance(item)

	isFile := p.classifier.IsFile(item.Name)
	if isFile {
		ext, hasExt := classify.ExtensionOf(item.Name)
		st.RecordFile(ext, hasExt)
	}

	if p.sink != nil && (isFile || !p.filesOnly) {
		if err := p.sink.WriteItem(item); err != nil {
			return fmt.Errorf("writing record for line %d: %w", item.LineNum, err)
		}
	}

	return nil
}
