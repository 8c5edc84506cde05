package models

import "time"

// Report is the outcome of scanning one directory: every keep/delete
// decision plus the files that could not be parsed. Reports are derived
// data and are never persisted; only executed runs are recorded in the
// history store.
type Report struct {
	RunID       string    // UUID identifying this run
	Directory   string    // Absolute path of the scanned directory
	Extension   string    // Bundle extension that was matched (e.g. ".app")
	ScannedAt   time.Time // When the scan started
	Scanned     int       // Total entries matching the extension
	Unparseable []string  // Filenames with no parsable version segment
	Groups      []Group   // One entry per base name, sorted by base name
}

// Duplicates returns the number of Candidates marked for deletion
// across all groups.
func (r *Report) Duplicates() int {
	n := 0
	for _, g := range r.Groups {
		n += len(g.Delete)
	}
	return n
}

// HasDuplicates reports whether any group contains more than one member.
func (r *Report) HasDuplicates() bool {
	return r.Duplicates() > 0
}

// DeletionResult records one deletion attempt during apply.
type DeletionResult struct {
	Candidate Candidate
	Err       error // nil on success
}

// Outcome is the aggregate result of applying a Report.
type Outcome struct {
	RunID    string           // Copied from the Report
	Preview  bool             // True when no filesystem mutation happened
	Deleted  []DeletionResult // Successful deletions (or would-be deletions in preview)
	Failed   []DeletionResult // Deletions that errored
	Skipped  []Candidate      // Marked for deletion but already gone
	Duration time.Duration    // Wall time of the apply phase
}

// Succeeded reports whether every attempted deletion went through.
func (o *Outcome) Succeeded() bool {
	return len(o.Failed) == 0
}
