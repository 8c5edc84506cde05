package resolver

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/harrison/appsweep/internal/models"
	"github.com/harrison/appsweep/internal/version"
)

// namePattern splits a filename stem into base name and version segment.
// The base match is greedy, so the version is the last underscore-delimited
// numeric-dot segment: "Microsoft_Base Application_25.0.23364.25858" parses
// into base "Microsoft_Base Application" and version "25.0.23364.25858".
var namePattern = regexp.MustCompile(`^(.+)_(\d+(?:\.\d+)*)$`)

// SplitName extracts the base name and raw version string from a bundle
// filename. ext is the expected extension (including the dot); matching is
// case-insensitive. Returns ok=false when the name does not follow the
// <base>_<version><ext> convention.
func SplitName(name, ext string) (base, rawVersion string, ok bool) {
	actualExt := filepath.Ext(name)
	if !strings.EqualFold(actualExt, ext) {
		return "", "", false
	}

	stem := name[:len(name)-len(actualExt)]
	match := namePattern.FindStringSubmatch(stem)
	if match == nil {
		return "", "", false
	}

	return match[1], match[2], true
}

// parseCandidate builds a Candidate from a directory entry, or an error
// when the filename has no parsable version segment. The base name is used
// verbatim as the grouping key: case-sensitive, spaces preserved.
func parseCandidate(dir, name, ext string) (models.Candidate, error) {
	base, raw, ok := SplitName(name, ext)
	if !ok {
		return models.Candidate{}, fmt.Errorf("no version segment in %q", name)
	}

	v, err := version.Parse(raw)
	if err != nil {
		return models.Candidate{}, fmt.Errorf("unparseable version in %q: %w", name, err)
	}

	return models.Candidate{
		Path:       filepath.Join(dir, name),
		Name:       name,
		Base:       base,
		Version:    v,
		RawVersion: raw,
	}, nil
}
