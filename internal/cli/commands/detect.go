package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"treesift/pkg/detector"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <tree-file>",
		Short: "Detect the decoration dialect of a tree dump",
		Long: `Sample lines from a tree dump and identify its decoration dialect
before committing to a full run.

Recognizes:
  - Unicode box-drawing output (GNU tree default)
  - ASCII pipe markers (tree --charset=ascii)
  - Plain space indentation

Reports the best match with a confidence score, an estimate of the
indentation unit, and whether the streaming parser understands the
dialect. Optionally writes a starter config file with --write-config.

Example:
  treesift detect dump.txt
  treesift detect --sample 500 huge-dump.txt
  treesift detect -w treesift.yaml dump.txt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", detector.DefaultSampleSize, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all matched dialects, not just the best")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	treeFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Check file exists
	if _, err := os.Stat(treeFile); os.IsNotExist(err) {
		return fmt.Errorf("tree file not found: %s", treeFile)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := d.DetectFromFile(ctx, treeFile)
	if err != nil {
		return fmt.Errorf("detection failed: %w", err)
	}

	// Write config file if requested
	if opts.WriteConfig != "" {
		if err := writeStarterConfig(opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(result, treeFile, opts)
	default:
		return outputDetectText(result, treeFile, opts)
	}
}

func outputDetectText(result *detector.DetectionResult, treeFile string, opts *DetectOptions) error {
	fmt.Println("=== Tree Dialect Detection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", treeFile)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Decorated lines: %d\n", result.DecoratedLines)
	if result.IndentUnit > 0 {
		fmt.Printf("Smallest content offset: %d characters\n", result.IndentUnit)
	}
	fmt.Println()

	if !result.HasMatch() {
		fmt.Println("No known dialect detected.")
		fmt.Println()
		fmt.Println("Tip: The file may not be tree output, or uses an uncommon convention.")
		fmt.Println("Check the first few lines manually.")
		return nil
	}

	best := result.BestMatch()
	fmt.Printf("Detected Dialect: %s\n", best.Dialect.Name)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)
	fmt.Println()

	if !best.Dialect.Parseable {
		fmt.Println("WARNING: This dialect uses markers the streaming parser treats as")
		fmt.Println("ordinary content. Paths will still be reconstructed, but entry names")
		fmt.Println("will carry the markers. Regenerate the dump with default tree output")
		fmt.Println("for clean names.")
		fmt.Println()
	}

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println("--- Other dialects matched ---")
		for i, m := range result.Matches[1:] {
			fmt.Printf("%d. %s (%.1f%% confidence)\n", i+2, m.Dialect.Name, m.Confidence*100)
			fmt.Printf("   %s\n", m.Dialect.Description)
		}
		fmt.Println()
	}

	return nil
}

// DialectJSON represents a dialect match in JSON output.
type DialectJSON struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line"`
	Parseable  bool    `json:"parseable"`
}

// DetectJSON represents the full JSON output.
type DetectJSON struct {
	File           string        `json:"file"`
	Matches        []DialectJSON `json:"matches"`
	SampledLines   int           `json:"sampled_lines"`
	DecoratedLines int           `json:"decorated_lines"`
	IndentUnit     int           `json:"indent_unit,omitempty"`
}

func outputDetectJSON(result *detector.DetectionResult, treeFile string, opts *DetectOptions) error {
	out := DetectJSON{
		File:           treeFile,
		SampledLines:   result.SampledLines,
		DecoratedLines: result.DecoratedLines,
		IndentUnit:     result.IndentUnit,
		Matches:        make([]DialectJSON, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1] // Only show best match
	}

	for _, m := range matches {
		out.Matches = append(out.Matches, DialectJSON{
			Name:       m.Dialect.Name,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			Parseable:  m.Dialect.Parseable,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig generates a starter config file.
func writeStarterConfig(configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(starterConfig), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Wrote starter config to: %s\n\n", configPath)
	return nil
}

const starterConfig = `# treesift configuration
# Generated by: treesift detect

# File-extension allow-list used to classify entries as files.
# Omit this key to use the built-in list; the TREESIFT_EXTENSIONS
# environment variable (comma-separated) replaces it entirely.
# extensions:
#   - go
#   - py
#   - txt

# Suppress directory records in the output.
files_only: false

# Record format: text or json.
output: text

# Cadence of plain-text progress lines when the bar is off.
progress_interval: 50000
`
