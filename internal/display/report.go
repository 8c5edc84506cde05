package display

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/harrison/appsweep/internal/models"
)

// ColorEnabled reports whether colorized output should be used for w.
// Only os.Stdout and os.Stderr attached to a TTY qualify.
func ColorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if f != os.Stdout && f != os.Stderr {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}

// PrintBanner writes the startup banner.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "  appsweep - duplicate bundle remover")
	fmt.Fprintln(w, "============================================================")
}

// RenderReport writes the per-group keep/delete decisions of a scan.
func RenderReport(w io.Writer, report *models.Report, colorOutput bool) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Fprintf(w, "Scanned %d %s bundles in %s\n", report.Scanned, report.Extension, report.Directory)
	fmt.Fprintf(w, "Found %d unique base names\n", len(report.Groups))

	for _, group := range report.Groups {
		if len(group.Delete) == 0 {
			continue
		}

		if colorOutput {
			fmt.Fprintf(w, "\n%s (%d versions)\n", cyan.Sprint(group.Base), group.Size())
			fmt.Fprintf(w, "  %s %s (version %s)\n", green.Sprint("keep:"), group.Keep.Name, group.Keep.RawVersion)
			for _, cand := range group.Delete {
				fmt.Fprintf(w, "  %s %s (version %s)\n", red.Sprint("delete:"), cand.Name, cand.RawVersion)
			}
		} else {
			fmt.Fprintf(w, "\n%s (%d versions)\n", group.Base, group.Size())
			fmt.Fprintf(w, "  keep: %s (version %s)\n", group.Keep.Name, group.Keep.RawVersion)
			for _, cand := range group.Delete {
				fmt.Fprintf(w, "  delete: %s (version %s)\n", cand.Name, cand.RawVersion)
			}
		}
	}

	if !report.HasDuplicates() {
		fmt.Fprintln(w, "\nNo duplicate bundles found.")
	}
}

// RenderSummary writes the end-of-run summary for an applied report.
func RenderSummary(w io.Writer, report *models.Report, outcome *models.Outcome, colorOutput bool) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w)
	if outcome.Preview {
		fmt.Fprintln(w, "DRY RUN COMPLETE")
		fmt.Fprintf(w, "Would delete %d duplicate bundles\n", len(outcome.Deleted))
		fmt.Fprintln(w, "Run without --dry-run to delete them.")
	} else {
		if outcome.Succeeded() {
			if colorOutput {
				fmt.Fprintf(w, "%s\n", green.Sprint("DELETION COMPLETE"))
			} else {
				fmt.Fprintln(w, "DELETION COMPLETE")
			}
		} else if colorOutput {
			fmt.Fprintf(w, "%s\n", red.Sprint("DELETION FINISHED WITH ERRORS"))
		} else {
			fmt.Fprintln(w, "DELETION FINISHED WITH ERRORS")
		}
		fmt.Fprintf(w, "Removed %d duplicate bundles\n", len(outcome.Deleted))
	}

	if len(outcome.Skipped) > 0 {
		fmt.Fprintf(w, "Skipped %d bundles already gone\n", len(outcome.Skipped))
	}
	if len(outcome.Failed) > 0 {
		for _, res := range outcome.Failed {
			line := fmt.Sprintf("  failed: %s (%v)", res.Candidate.Name, res.Err)
			if colorOutput {
				fmt.Fprintln(w, red.Sprint(line))
			} else {
				fmt.Fprintln(w, line)
			}
		}
	}
	if len(report.Unparseable) > 0 {
		line := fmt.Sprintf("Skipped %d unparseable filenames", len(report.Unparseable))
		if colorOutput {
			fmt.Fprintln(w, yellow.Sprint(line))
		} else {
			fmt.Fprintln(w, line)
		}
	}
}
