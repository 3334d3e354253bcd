// Package stacktrace extracts source locations from stack trace text.
//
// Stack traces arrive as opaque text whose shape depends on the runtime that
// produced them. Extraction is best-effort: when no line carries a
// recognizable location, the caller gets nothing back, which is missing
// metadata rather than an error.
package stacktrace

import (
	"regexp"
	"strconv"
	"strings"
)

// Location is a source position recovered from a stack trace.
type Location struct {
	File   string
	Line   int
	Column int
}

// frameRE matches a trailing path:line:column, optionally preceded by
// "at ", an optional function name, and optional parentheses, e.g.
//
//	at foo (https://example.com/app.js:42:7)
//	at https://example.com/app.js:42:7
var frameRE = regexp.MustCompile(`([^\s()]+):(\d+):(\d+)\)?\s*$`)

// skippedPrefixes mark frames that originate from browser extensions rather
// than the instrumented application.
var skippedPrefixes = []string{
	"chrome-extension://",
	"moz-extension://",
}

// Extract scans stack text line by line and returns the first location that
// does not point into a browser extension or a vendored dependency. The
// second return value is false when no line yields an acceptable location.
func Extract(stack string) (Location, bool) {
	for _, line := range strings.Split(stack, "\n") {
		m := frameRE.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		file := m[1]
		if skipFile(file) {
			continue
		}
		lineNo, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		col, err := strconv.Atoi(m[3])
		if err != nil {
			continue
		}
		return Location{File: file, Line: lineNo, Column: col}, true
	}
	return Location{}, false
}

// skipFile reports whether a frame's path should be passed over in favor of
// a later candidate.
func skipFile(file string) bool {
	for _, prefix := range skippedPrefixes {
		if strings.HasPrefix(file, prefix) {
			return true
		}
	}
	return strings.Contains(file, "node_modules")
}
