// Package display renders scan reports, apply summaries, and warnings
// for console output. Color is applied only when the destination is a
// TTY; all functions take an io.Writer so tests can capture plain text.
package display
