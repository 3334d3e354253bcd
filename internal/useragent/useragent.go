// Package useragent classifies user-agent strings into coarse browser and
// OS families.
//
// Classification is a substring heuristic, not a parser: tokens are tested
// in a fixed priority order and the first hit wins. Chrome is tested before
// Safari because Chrome user agents also advertise Safari. The heuristic is
// deliberately kept behind a small surface so it can be swapped for a real
// user-agent parser without touching callers.
package useragent

import "strings"

// token pairs are ordered by priority; matching is a case-sensitive
// substring test.
var browserTokens = []struct {
	token  string
	family string
}{
	{"Chrome", "Chrome"},
	{"Firefox", "Firefox"},
	{"Safari", "Safari"},
	{"Edge", "Edge"},
}

// Android user agents also advertise Linux, so Linux wins for those; the
// token order is kept stable because downstream dashboards group on it.
var osTokens = []struct {
	token  string
	family string
}{
	{"Windows", "Windows"},
	{"macOS", "macOS"},
	{"Linux", "Linux"},
	{"Android", "Android"},
	{"iOS", "iOS"},
}

// Detector classifies user-agent strings. The zero value is ready to use.
type Detector struct{}

// Browser returns the browser family for the given user-agent string, or
// "" when no known token matches.
func (Detector) Browser(ua string) string {
	return classify(ua, browserTokens)
}

// OS returns the operating system family for the given user-agent string,
// or "" when no known token matches.
func (Detector) OS(ua string) string {
	return classify(ua, osTokens)
}

func classify(ua string, tokens []struct{ token, family string }) string {
	for _, t := range tokens {
		if strings.Contains(ua, t.token) {
			return t.family
		}
	}
	return ""
}
