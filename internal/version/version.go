// Package version provides an ordered integer-tuple version type used to
// rank application bundles that embed a dotted version in their filename.
//
// Versions compare element-wise as integers with the shorter tuple
// zero-padded to the longer length, so "25.0.11.0" sorts above "24.9.9"
// and "1.2" equals "1.2.0". Comparison is purely numeric; no semver
// pre-release or build-metadata semantics apply.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is an ordered tuple of non-negative integer components parsed
// from a dotted version string such as "25.0.23364.25858".
type Version []int

// Parse converts a dotted version string into a Version.
// Every dot-separated token must be a non-negative integer; any other
// token makes the whole string unparseable.
func Parse(s string) (Version, error) {
	if s == "" {
		return nil, fmt.Errorf("empty version string")
	}

	tokens := strings.Split(s, ".")
	v := make(Version, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid version token %q in %q", tok, s)
		}
		v = append(v, n)
	}
	return v, nil
}

// Compare returns -1 if a < b, 0 if a == b, and 1 if a > b.
// Tuples are compared element-wise with the shorter side zero-padded,
// so Compare(Parse("1.2"), Parse("1.2.0")) == 0.
func Compare(a, b Version) int {
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	for i := 0; i < maxLen; i++ {
		av, bv := 0, 0
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av < bv {
			return -1
		}
		if av > bv {
			return 1
		}
	}
	return 0
}

// Less reports whether v sorts strictly before other.
func (v Version) Less(other Version) bool {
	return Compare(v, other) < 0
}

// Equal reports whether v and other are numerically equal after
// zero-padding. "1.0" and "1.0.0" are equal; their raw strings are not.
func (v Version) Equal(other Version) bool {
	return Compare(v, other) == 0
}

// String renders the version back into dotted form.
func (v Version) String() string {
	if len(v) == 0 {
		return ""
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}
