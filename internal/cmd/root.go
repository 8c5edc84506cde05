package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for appsweep
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appsweep",
		Short: "Remove duplicate versioned application bundles",
		Long: `appsweep scans a directory for application bundles named
<base>_<version>.<ext>, groups them by base name, and removes every
bundle except the highest version in each group.

Versions compare numerically component by component (25.0.11.0 beats
24.9.9), not as strings. Filenames without a parsable version segment
are reported and left untouched.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	// Add subcommands
	cmd.AddCommand(NewCleanCommand())
	cmd.AddCommand(NewScanCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}
