package telemetry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The collector contract pins the JSON field names, so the wire shape gets
// one explicit check.
func TestReport_WireShape(t *testing.T) {
	r := &Report{
		Message:     "boom",
		Stack:       "Error: boom\n    at foo (https://example.com/app.js:42:7)",
		File:        "https://example.com/app.js",
		Line:        42,
		Column:      7,
		Level:       LevelError,
		Timestamp:   1735689600000,
		Environment: "production",
		Release:     "1.4.2",
		Tags:        map[string]string{"service": "checkout"},
		User:        &User{ID: "u-7"},
		Context:     Context{Browser: "Chrome", OS: "Windows", URL: "https://example.com", UserAgent: "UA"},
		Breadcrumbs: []Breadcrumb{{Timestamp: 1735689599000, Message: "click", Category: "ui", Level: LevelInfo}},
	}

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	for _, field := range []string{
		"message", "stack", "file", "line", "column", "level", "timestamp",
		"environment", "release", "tags", "user", "context", "breadcrumbs",
	} {
		assert.Contains(t, decoded, field)
	}
}

func TestReport_OptionalFieldsOmitted(t *testing.T) {
	r := &Report{
		Message:     "done",
		Level:       LevelInfo,
		Timestamp:   1735689600000,
		Environment: "production",
		Tags:        map[string]string{},
		Breadcrumbs: []Breadcrumb{},
	}

	out, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.NotContains(t, decoded, "stack")
	assert.NotContains(t, decoded, "file")
	assert.NotContains(t, decoded, "line")
	assert.NotContains(t, decoded, "column")
	assert.NotContains(t, decoded, "release")
	assert.NotContains(t, decoded, "user")

	// Required containers stay present even when empty.
	assert.Equal(t, map[string]any{}, decoded["tags"])
	assert.Equal(t, []any{}, decoded["breadcrumbs"])
	assert.Equal(t, map[string]any{}, decoded["context"])
}

func TestLevel_Valid(t *testing.T) {
	for _, l := range []Level{LevelError, LevelWarning, LevelInfo, LevelDebug} {
		assert.True(t, l.Valid(), string(l))
	}
	assert.False(t, Level("fatal").Valid())
	assert.False(t, Level("").Valid())
}
