// Package fileutil provides the directory listing used to discover
// candidate bundles.
//
// The listing is deliberately minimal: a single non-recursive directory
// read with case-insensitive extension filtering and alphabetically
// sorted output. Directory entries are included on request because macOS
// application bundles are directories, not regular files. Non-fatal
// per-entry errors are collected so one unreadable entry cannot abort a
// scan; only an unreadable directory is fatal.
package fileutil
