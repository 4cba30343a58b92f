package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"treesift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a treesift configuration file without running a parse.

Checks:
  - YAML syntax
  - Extension allow-list entries (non-empty, no dots or slashes)
  - Output format
  - Progress interval`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("  Extensions:        %d\n", len(cfg.Extensions))
	fmt.Printf("  Files only:        %v\n", cfg.FilesOnly)
	fmt.Printf("  Output format:     %s\n", cfg.Output)
	fmt.Printf("  Progress interval: %d\n", cfg.ProgressInterval)

	// A tiny allow-list is usually a config mistake, not an error
	if len(cfg.Extensions) < 5 {
		fmt.Printf("\nWarning: only %d extension(s) in the allow-list; most entries\n", len(cfg.Extensions))
		fmt.Println("will be classified as directories.")
	}

	return nil
}
