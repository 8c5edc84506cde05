package fileutil

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ListOptions configures directory listing behavior.
type ListOptions struct {
	// Extension restricts results to entries with this extension
	// (e.g. ".app"). Matching is case-insensitive. Empty matches everything.
	Extension string
	// IncludeDirs includes directory entries in the results. Application
	// bundles on macOS are directories, so call sites default this on.
	IncludeDirs bool
}

// ListResult contains the results of a directory listing.
type ListResult struct {
	// Entries contains the names (not paths) of all matched entries,
	// sorted alphabetically for deterministic output.
	Entries []string
	// Errors contains non-fatal errors encountered while statting entries.
	Errors []error
}

// ListDirectory returns the entries of a single directory matching the
// provided options. It does not recurse. A missing or unreadable directory
// is a fatal error; per-entry stat failures are collected in the result
// and do not abort the listing.
func ListDirectory(dir string, opts ListOptions) (*ListResult, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	wantExt := strings.ToLower(opts.Extension)
	if wantExt != "" && !strings.HasPrefix(wantExt, ".") {
		wantExt = "." + wantExt
	}

	result := &ListResult{
		Entries: make([]string, 0, len(dirEntries)),
		Errors:  make([]error, 0),
	}

	for _, entry := range dirEntries {
		name := entry.Name()

		if entry.IsDir() && !opts.IncludeDirs {
			continue
		}

		if wantExt != "" && strings.ToLower(filepath.Ext(name)) != wantExt {
			continue
		}

		// Stat failures (e.g. entry removed mid-listing) are recorded
		// but do not stop the listing.
		if _, err := entry.Info(); err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("error accessing %s: %w", name, err))
			continue
		}

		result.Entries = append(result.Entries, name)
	}

	// Sort for consistent output across platforms.
	sort.Strings(result.Entries)

	return result, nil
}
