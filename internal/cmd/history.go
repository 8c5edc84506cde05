package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harrison/appsweep/internal/config"
	"github.com/harrison/appsweep/internal/history"
)

// NewHistoryCommand creates the 'appsweep history' command group
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect or clear the run-history database",
		Long: `Commands for the run-history database, which records every clean run
(directory, mode, counts) and each deletion attempt.`,
	}

	cmd.AddCommand(newHistoryShowCommand())
	cmd.AddCommand(newHistoryClearCommand())

	return cmd
}

// newHistoryShowCommand creates the 'appsweep history show' command
func newHistoryShowCommand() *cobra.Command {
	var limit int
	var dbPath string
	var deletions bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show recent runs",
		Long: `Display the most recent runs, newest first, with their mode and
scan/delete counts. With --deletions, each run's individual deletion
attempts are listed as well.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryShow(cmd, limit, dbPath, deletions)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show")
	cmd.Flags().StringVar(&dbPath, "db-path", "", "Path to history database (for testing)")
	cmd.Flags().BoolVar(&deletions, "deletions", false, "List each run's deletion attempts")

	return cmd
}

// runHistoryShow executes the show command
func runHistoryShow(cmd *cobra.Command, limit int, dbPathOverride string, deletions bool) error {
	output := cmd.OutOrStdout()

	dbPath, err := config.GetHistoryDBPath(dbPathOverride)
	if err != nil {
		return fmt.Errorf("failed to get history database path: %w", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintln(output, "No run history recorded yet.")
		return nil
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	runs, err := store.RecentRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("get recent runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Fprintln(output, "No run history recorded yet.")
		return nil
	}

	printRuns(output, runs)

	if deletions {
		for _, run := range runs {
			dels, err := store.RunDeletions(ctx, run.ID)
			if err != nil {
				return fmt.Errorf("get deletions for run %s: %w", run.ID, err)
			}
			printDeletions(output, run, dels)
		}
	}

	return nil
}

// printRuns formats and prints the run list
func printRuns(w io.Writer, runs []*history.Run) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	gray := color.New(color.FgHiBlack)

	cyan.Fprintf(w, "Recent runs (%d):\n", len(runs))
	for _, run := range runs {
		status := green.Sprint("ok")
		if run.Failed > 0 {
			status = red.Sprintf("%d failed", run.Failed)
		}
		fmt.Fprintf(w, "  %s  %-7s  %s\n",
			run.StartedAt.Format("2006-01-02 15:04:05"), run.Mode, run.Directory)
		fmt.Fprintf(w, "    scanned %d, groups %d, deleted %d, skipped %d, unparseable %d [%s] %s\n",
			run.Scanned, run.Groups, run.Deleted, run.Skipped, run.Unparseable,
			status, gray.Sprint(run.ID))
	}
}

// printDeletions formats one run's deletion attempts
func printDeletions(w io.Writer, run *history.Run, dels []*history.Deletion) {
	if len(dels) == 0 {
		return
	}

	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "\nDeletions for run %s:\n", run.ID)
	for _, d := range dels {
		if d.Success {
			fmt.Fprintf(w, "  %s %s (version %s)\n", green.Sprint("deleted"), d.Path, d.Version)
		} else {
			fmt.Fprintf(w, "  %s %s (version %s): %s\n", red.Sprint("failed"), d.Path, d.Version, d.Error)
		}
	}
}

// newHistoryClearCommand creates the 'appsweep history clear' command
func newHistoryClearCommand() *cobra.Command {
	var dbPath string
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded run history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistoryClear(cmd, dbPath, yes)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db-path", "", "Path to history database (for testing)")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip confirmation prompt")

	return cmd
}

// runHistoryClear executes the clear command
func runHistoryClear(cmd *cobra.Command, dbPathOverride string, yes bool) error {
	output := cmd.OutOrStdout()

	dbPath, err := config.GetHistoryDBPath(dbPathOverride)
	if err != nil {
		return fmt.Errorf("failed to get history database path: %w", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		fmt.Fprintln(output, "No run history recorded yet.")
		return nil
	}

	if !yes {
		fmt.Fprint(output, "This will delete ALL recorded run history. Continue? [y/N]: ")
		if !confirmAction(cmd.InOrStdin()) {
			fmt.Fprintln(output, "Aborted.")
			return nil
		}
	}

	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history store: %w", err)
	}
	defer store.Close()

	if err := store.Clear(context.Background()); err != nil {
		return err
	}

	fmt.Fprintln(output, "Run history cleared.")
	return nil
}

// confirmAction reads a y/N answer from the given reader
func confirmAction(in io.Reader) bool {
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
