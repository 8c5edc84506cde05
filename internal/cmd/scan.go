package cmd

import (
	"github.com/spf13/cobra"

	"github.com/harrison/appsweep/internal/display"
	"github.com/harrison/appsweep/internal/logger"
	"github.com/harrison/appsweep/internal/resolver"
)

// NewScanCommand creates the scan command
func NewScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Report duplicate bundles without deleting anything",
		Long: `Scan a directory and print the keep/delete decision for every group
of bundles sharing a base name. Nothing is deleted and no run is
recorded; use 'appsweep clean' to act on the report.

Exit code: 0 on a successful scan, 1 if the directory is unreadable`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScan,
	}

	cmd.Flags().String("config", "", "Path to config file (default: <directory>/.appsweep/config.yaml)")
	cmd.Flags().String("ext", "", "Bundle extension to match (default: .app)")
	cmd.Flags().String("log-level", "", "Log verbosity (trace, debug, info, warn, error)")

	return cmd
}

// runScan implements the scan command logic
func runScan(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := loadMergedConfig(cmd, dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	log := logger.NewConsoleLogger(out, cfg.LogLevel)

	report, err := resolver.Scan(dir, resolver.Options{Extension: cfg.Extension}, log)
	if err != nil {
		return err
	}

	display.RenderReport(out, report, display.ColorEnabled(out))

	if len(report.Unparseable) > 0 {
		display.UnparseableWarning(report.Unparseable).Display(out)
	}

	return nil
}
