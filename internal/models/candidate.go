package models

import (
	"github.com/harrison/appsweep/internal/version"
)

// Candidate represents one parsed bundle eligible for duplicate grouping.
// It is constructed once per run from a directory listing and becomes
// irrelevant once the file is deleted.
type Candidate struct {
	Path       string          // Absolute path to the bundle
	Name       string          // Bare filename including extension
	Base       string          // Grouping key: everything before the version segment, verbatim
	Version    version.Version // Parsed ordered version tuple
	RawVersion string          // Version substring exactly as it appeared in the filename
}

// Group is the keep/delete decision for all Candidates sharing a base name.
// A group always has at least one member; groups of size 1 have no deletions.
type Group struct {
	Base   string      // Shared base name
	Keep   Candidate   // The surviving Candidate (maximum version)
	Delete []Candidate // Candidates marked for deletion, highest version first
}

// Size returns the total number of Candidates in the group.
func (g Group) Size() int {
	return 1 + len(g.Delete)
}
