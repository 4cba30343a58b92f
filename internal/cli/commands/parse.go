package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"treesift/internal/progress"
	"treesift/pkg/classify"
	"treesift/pkg/config"
	"treesift/pkg/output"
	"treesift/pkg/parser"
	"treesift/pkg/processor"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	ConfigFile       string
	FilesOnly        bool
	Format           string
	OutputFile       string
	ProgressInterval int
	NoProgress       bool
	Verbose          bool
	Quiet            bool
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <tree-file>...",
		Short: "Parse tree output into paths and statistics",
		Long: `Stream one or more tree-command dumps, reconstructing each entry's full
path and classifying it against the extension allow-list.

Per-entry records go to stdout or --output-file; progress and operational
messages go to stderr. Glob patterns are expanded; each matched file is
processed with its own path lineage while statistics aggregate across the
whole run. An interrupt (Ctrl-C) stops cleanly after the current line and
still reports statistics for the work done.

Exit codes:
  0 - Run completed
  1 - Run interrupted (partial statistics reported)
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Config file (YAML); defaults apply without one")
	cmd.Flags().BoolVar(&opts.FilesOnly, "files-only", false, "Show only files, not directories")
	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "Record format (text|json)")
	cmd.Flags().StringVarP(&opts.OutputFile, "output-file", "o", "", "Write records to a file instead of stdout")
	cmd.Flags().IntVar(&opts.ProgressInterval, "progress-interval", 0, "Progress line cadence when the bar is off")
	cmd.Flags().BoolVar(&opts.NoProgress, "no-progress", false, "Disable the progress bar")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Include raw source lines in records")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Statistics only, no per-entry records")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Interrupts request a soft stop: the processor finishes the current
	// line and reports partial statistics.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadParseConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding tree file patterns: %w", err)
	}

	// Destination for records
	dest, closeDest, err := openDestination(opts.OutputFile)
	if err != nil {
		return err
	}
	defer closeDest()

	formatter, err := createFormatter(cfg.Output, dest, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	title := "All Items"
	if cfg.FilesOnly {
		title = "Files Only"
	}
	if err := formatter.WriteHeader(title); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	reporter := createReporter(files, cfg, opts)

	proc := processor.New(classify.New(cfg.Extensions),
		processor.WithFilesOnly(cfg.FilesOnly),
		processor.WithSink(formatter),
		processor.WithProgress(reporter.Observe),
	)

	source := parser.NewFileSource(files)
	defer source.Close()

	result, err := proc.Process(ctx, source)
	reporter.Finish()
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	report := output.NewReport(result.Stats, output.Metadata{
		Sources:     result.Metadata.Sources,
		FilesOnly:   cfg.FilesOnly,
		Interrupted: result.Metadata.Interrupted,
		Duration:    result.Metadata.EndTime.Sub(result.Metadata.StartTime),
	})

	if err := formatter.WriteReport(report); err != nil {
		return fmt.Errorf("writing statistics: %w", err)
	}

	if result.Metadata.Interrupted {
		fmt.Fprintln(os.Stderr, "\nProcessing interrupted.")
		ExitCode = 1
	}
	fmt.Fprintf(os.Stderr, "\n=== Processing Complete ===\n")
	fmt.Fprintf(os.Stderr, "Total lines processed: %d\n", result.Stats.TotalLines)
	fmt.Fprintf(os.Stderr, "Files found: %d\n", result.Stats.FilesFound)
	if opts.OutputFile != "" {
		fmt.Fprintf(os.Stderr, "Output written to: %s\n", opts.OutputFile)
	}

	return nil
}

// loadParseConfig loads the config (file or defaults) and applies flag
// overrides on top.
func loadParseConfig(ctx context.Context, cmd *cobra.Command, opts *ParseOptions) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if opts.ConfigFile != "" {
		cfg, err = config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
	} else {
		cfg, err = config.Default()
		if err != nil {
			return nil, err
		}
	}

	// Flags beat the config file, but only when actually set
	if cmd.Flags().Changed("files-only") {
		cfg.FilesOnly = opts.FilesOnly
	}
	if cmd.Flags().Changed("format") {
		cfg.Output = opts.Format
	}
	if cmd.Flags().Changed("progress-interval") {
		cfg.ProgressInterval = opts.ProgressInterval
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// openDestination returns the record writer and a cleanup function.
func openDestination(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}

	f, err := os.Create(path) // #nosec G304 -- user-provided output path is expected
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Output will be written to: %s\n", path)

	bw := bufio.NewWriterSize(f, 64*1024)
	cleanup := func() {
		if err := bw.Flush(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: flushing output file: %v\n", err)
		}
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: closing output file: %v\n", err)
		}
	}
	return bw, cleanup, nil
}

func createFormatter(format string, w io.Writer, opts output.FormatOptions) (output.Formatter, error) {
	switch format {
	case "text":
		return output.NewTextFormatter(w, opts), nil
	case "json":
		return output.NewJSONFormatter(w, opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text or json)", format)
	}
}

// createReporter picks the progress display: a bar sized by a counting
// pre-pass, or plain interval lines when the bar is off or the count
// fails.
func createReporter(files []string, cfg *config.Config, opts *ParseOptions) progress.Reporter {
	if opts.NoProgress {
		return progress.NewInterval(os.Stderr, cfg.ProgressInterval)
	}

	fmt.Fprintln(os.Stderr, "Counting lines for progress bar...")
	total, err := parser.CountLines(files)
	if err != nil || total == 0 {
		return progress.NewInterval(os.Stderr, cfg.ProgressInterval)
	}
	fmt.Fprintf(os.Stderr, "Total lines: %d\n", total)
	return progress.NewBar(total)
}
