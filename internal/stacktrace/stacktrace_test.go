package stacktrace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		stack string
		want  Location
		ok    bool
	}{
		{
			name:  "function name with parentheses",
			stack: "Error: boom\n    at foo (https://example.com/app.js:42:7)",
			want:  Location{File: "https://example.com/app.js", Line: 42, Column: 7},
			ok:    true,
		},
		{
			name:  "bare location without function name",
			stack: "Error: boom\n    at https://example.com/app.js:10:3",
			want:  Location{File: "https://example.com/app.js", Line: 10, Column: 3},
			ok:    true,
		},
		{
			name: "vendored frame skipped in favor of next candidate",
			stack: "Error: boom\n" +
				"    at emit (https://example.com/node_modules/lib/events.js:5:1)\n" +
				"    at handler (https://example.com/src/main.js:88:12)",
			want: Location{File: "https://example.com/src/main.js", Line: 88, Column: 12},
			ok:   true,
		},
		{
			name: "chrome extension frame skipped",
			stack: "Error: boom\n" +
				"    at inject (chrome-extension://abcdef/content.js:3:9)\n" +
				"    at run (https://example.com/app.js:7:2)",
			want: Location{File: "https://example.com/app.js", Line: 7, Column: 2},
			ok:   true,
		},
		{
			name: "firefox extension frame skipped",
			stack: "Error: boom\n" +
				"    at moz-extension://abcdef/content.js:3:9\n" +
				"    at https://example.com/app.js:7:2",
			want: Location{File: "https://example.com/app.js", Line: 7, Column: 2},
			ok:   true,
		},
		{
			name:  "no structural match",
			stack: "Error: boom\nat somewhere unknowable",
			ok:    false,
		},
		{
			name: "all candidates rejected",
			stack: "Error: boom\n" +
				"    at emit (https://example.com/node_modules/a.js:1:1)\n" +
				"    at inject (chrome-extension://abcdef/b.js:2:2)",
			ok: false,
		},
		{
			name:  "go runtime frames carry no column and yield nothing",
			stack: "goroutine 1 [running]:\nmain.main()\n\t/src/app/main.go:12 +0x1d",
			ok:    false,
		},
		{
			name:  "empty stack",
			stack: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, ok := Extract(tt.stack)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, loc)
			}
		})
	}
}
