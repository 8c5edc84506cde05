package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/appsweep/internal/config"
	"github.com/harrison/appsweep/internal/display"
	"github.com/harrison/appsweep/internal/filelock"
	"github.com/harrison/appsweep/internal/history"
	"github.com/harrison/appsweep/internal/logger"
	"github.com/harrison/appsweep/internal/models"
	"github.com/harrison/appsweep/internal/resolver"
)

// NewCleanCommand creates the clean command
func NewCleanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [directory]",
		Short: "Delete duplicate bundles, keeping the highest version",
		Long: `Scan a directory for versioned bundles and delete every duplicate,
keeping only the highest version of each base name.

Configuration is loaded from <directory>/.appsweep/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  appsweep clean                      # Clean the current directory
  appsweep clean /path/to/apps        # Clean a specific directory
  appsweep clean --dry-run            # Preview without deleting
  appsweep clean --ext .bundle /apps  # Match a different extension
  appsweep clean --no-history /apps   # Skip run-history recording`,
		Args: cobra.MaximumNArgs(1),
		RunE: runClean,
	}

	// Add flags
	cmd.Flags().String("config", "", "Path to config file (default: <directory>/.appsweep/config.yaml)")
	cmd.Flags().Bool("dry-run", false, "Preview deletions without touching the filesystem")
	cmd.Flags().String("ext", "", "Bundle extension to match (default: .app)")
	cmd.Flags().String("log-dir", "", "Directory for run log files")
	cmd.Flags().String("log-level", "", "Log verbosity (trace, debug, info, warn, error)")
	cmd.Flags().Bool("no-history", false, "Do not record this run in the history database")
	cmd.Flags().Bool("no-lock", false, "Skip the directory lock (unsafe with concurrent runs)")

	return cmd
}

// runClean implements the clean command logic
func runClean(cmd *cobra.Command, args []string) error {
	dir := "."
	if len(args) == 1 {
		dir = args[0]
	}

	cfg, err := loadMergedConfig(cmd, dir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	colorOutput := display.ColorEnabled(out)
	display.PrintBanner(out)

	console := logger.NewConsoleLogger(out, cfg.LogLevel)
	sinks := []logger.Logger{console}

	fileLog, err := logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		console.LogWarn(fmt.Sprintf("File logging disabled: %v", err))
	} else {
		defer fileLog.Close()
		sinks = append(sinks, fileLog)
	}
	log := logger.NewMultiLogger(sinks...)

	execute := !cfg.DryRun
	if execute {
		log.LogInfo("Mode: LIVE DELETION")
	} else {
		log.LogInfo("Mode: DRY RUN")
	}

	noLock, _ := cmd.Flags().GetBool("no-lock")
	if execute && !noLock {
		lock := filelock.New(dir)
		acquired, err := lock.TryLock()
		if err != nil {
			return err
		}
		if !acquired {
			return fmt.Errorf("another appsweep run is already active in %s", dir)
		}
		defer lock.Unlock()
	}

	report, err := resolver.Scan(dir, resolver.Options{Extension: cfg.Extension}, log)
	if err != nil {
		return err
	}

	display.RenderReport(out, report, colorOutput)

	outcome := resolver.Apply(report, execute, log)
	display.RenderSummary(out, report, outcome, colorOutput)

	if cfg.History.Enabled {
		recordHistory(cfg, report, outcome, log)
	}

	if !outcome.Succeeded() {
		return fmt.Errorf("%d deletion(s) failed", len(outcome.Failed))
	}
	return nil
}

// loadMergedConfig loads the config file for dir and overlays any flags
// the user actually set.
func loadMergedConfig(cmd *cobra.Command, dir string) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	// Build flag pointers for merge (only changed values override).
	var extPtr, logLevelPtr, logDirPtr *string
	var dryRunPtr, historyEnabledPtr *bool

	if cmd.Flags().Changed("ext") {
		ext, _ := cmd.Flags().GetString("ext")
		extPtr = &ext
	}
	if cmd.Flags().Changed("log-level") {
		level, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &level
	}
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}
	if cmd.Flags().Changed("dry-run") {
		dryRun, _ := cmd.Flags().GetBool("dry-run")
		dryRunPtr = &dryRun
	}
	if cmd.Flags().Changed("no-history") {
		noHistory, _ := cmd.Flags().GetBool("no-history")
		enabled := !noHistory
		historyEnabledPtr = &enabled
	}

	cfg.MergeWithFlags(extPtr, logLevelPtr, logDirPtr, dryRunPtr, historyEnabledPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// recordHistory writes the run into the history database. Failures are
// logged and swallowed; the sweep itself already happened.
func recordHistory(cfg *config.Config, report *models.Report, outcome *models.Outcome, log logger.Logger) {
	dbPath, err := config.GetHistoryDBPath(cfg.History.DBPath)
	if err != nil {
		log.LogWarn(fmt.Sprintf("History disabled: %v", err))
		return
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		log.LogWarn(fmt.Sprintf("History disabled: %v", err))
		return
	}
	defer store.Close()

	ctx := context.Background()
	run := history.RunFromOutcome(report, outcome)
	if err := store.RecordRun(ctx, run, outcome); err != nil {
		log.LogWarn(fmt.Sprintf("Failed to record run history: %v", err))
		return
	}
	if err := store.PruneRuns(ctx, cfg.History.KeepRuns); err != nil {
		log.LogWarn(fmt.Sprintf("Failed to prune run history: %v", err))
	}
}
