// Package resolver implements version-aware duplicate resolution for
// application bundles.
//
// A bundle filename of the form <base>_<version>.<ext> parses into a
// grouping key (the base name, verbatim) and an ordered integer version
// tuple. Scan groups a directory's bundles by base name and marks every
// member except the highest-versioned one for deletion; Apply then
// previews or executes those deletions. Both operations take an explicit
// logger.Logger so the package keeps no global state.
package resolver
