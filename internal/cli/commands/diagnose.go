package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"treesift/pkg/parser"
)

// DiagnoseOptions holds command-line options for the diagnose command.
type DiagnoseOptions struct {
	MaxShown int
}

// NewDiagnoseCommand creates the diagnose command.
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <tree-file>...",
		Short: "Report structural irregularities in a tree dump",
		Long: `Stream a tree dump and report the irregularities a parse run tolerates
without fixing:

  - Indentation jumps deeper than one level. The path reconstructor pads
    the missing ancestors with empty names, so affected paths contain
    empty segments ("Root//Deep").
  - Decoration-only lines, which produce no entry.

Exit codes:
  0 - No irregularities
  1 - Irregularities found
  2 - Runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.MaxShown, "max-shown", 20, "Maximum irregularities to print individually")

	return cmd
}

// diagnosis accumulates findings for one diagnose run.
type diagnosis struct {
	linesRead      int
	blankLines     int
	decorationOnly []int // line numbers
	levelJumps     []levelJump
	maxLevel       int
}

type levelJump struct {
	lineNum   int
	fromLevel int
	toLevel   int
	path      string
}

func runDiagnose(cmd *cobra.Command, args []string, opts *DiagnoseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding tree file patterns: %w", err)
	}

	source := parser.NewFileSource(files)
	defer source.Close()

	diag, err := diagnoseSource(ctx, source)
	if err != nil {
		return err
	}

	printDiagnosis(diag, opts.MaxShown)

	if len(diag.levelJumps) > 0 || len(diag.decorationOnly) > 0 {
		ExitCode = 1
	}
	return nil
}

func diagnoseSource(ctx context.Context, source parser.LineSource) (*diagnosis, error) {
	diag := &diagnosis{}
	pathStack := parser.NewPathStack()
	prevLevel := -1
	currentSource := ""

	for {
		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading tree source: %w", err)
		}

		if line.Source != currentSource {
			currentSource = line.Source
			pathStack.Reset()
			prevLevel = -1
		}

		diag.linesRead++

		if strings.TrimSpace(line.Text) == "" {
			diag.blankLines++
			continue
		}

		item, ok := parser.ParseLine(line.LineNum, line.Text)
		if !ok {
			diag.decorationOnly = append(diag.decorationOnly, line.LineNum)
			continue
		}

		path := pathStack.Advance(item)

		if item.IndentLevel > prevLevel+1 {
			diag.levelJumps = append(diag.levelJumps, levelJump{
				lineNum:   item.LineNum,
				fromLevel: prevLevel,
				toLevel:   item.IndentLevel,
				path:      path,
			})
		}
		if item.IndentLevel > diag.maxLevel {
			diag.maxLevel = item.IndentLevel
		}
		prevLevel = item.IndentLevel
	}

	return diag, nil
}

func printDiagnosis(diag *diagnosis, maxShown int) {
	fmt.Println("=== Tree Dump Diagnosis ===")
	fmt.Println()
	fmt.Printf("Lines read:       %d\n", diag.linesRead)
	fmt.Printf("Blank lines:      %d\n", diag.blankLines)
	fmt.Printf("Deepest level:    %d\n", diag.maxLevel)
	fmt.Println()

	if len(diag.levelJumps) == 0 && len(diag.decorationOnly) == 0 {
		fmt.Println("No irregularities found.")
		return
	}

	if n := len(diag.decorationOnly); n > 0 {
		fmt.Printf("Decoration-only lines: %d\n", n)
		for i, lineNum := range diag.decorationOnly {
			if i >= maxShown {
				fmt.Printf("  ... and %d more\n", n-maxShown)
				break
			}
			fmt.Printf("  - line %d\n", lineNum)
		}
		fmt.Println()
	}

	if n := len(diag.levelJumps); n > 0 {
		fmt.Printf("Indentation jumps (paths gain empty segments): %d\n", n)
		for i, jump := range diag.levelJumps {
			if i >= maxShown {
				fmt.Printf("  ... and %d more\n", n-maxShown)
				break
			}
			fmt.Printf("  - line %d: level %d after level %d -> '%s'\n",
				jump.lineNum, jump.toLevel, jump.fromLevel, jump.path)
		}
	}
}
