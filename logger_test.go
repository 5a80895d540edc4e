package lkv

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Merge(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	otm := New[string, int](func(o *Options[string]) {
		o.Logger = logger.With("component", "test")
	})
	otm.Insert("a", 1)

	other := New[string, int]()
	other.Insert("a", 2)
	other.Insert("b", 3)
	other.Insert("c", 4)
	otm.Merge(other)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))

	assert.Equal(t, "merge completed", rec["msg"])
	assert.Equal(t, "test", rec["component"])
	assert.EqualValues(t, 3, rec["entries"])
	assert.EqualValues(t, 2, rec["keys_added"])
	assert.EqualValues(t, 1, rec["keys_extended"])
}

func TestLogger_Drain(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	otm := New[int, int](func(o *Options[int]) {
		o.Logger = logger
	})
	otm.Insert(1, 1)
	otm.Insert(2, 2)

	for range otm.Drain() {
	}

	out := buf.String()
	assert.True(t, strings.Contains(out, "drain started"), out)
	assert.True(t, strings.Contains(out, "entries=2"), out)
}

func TestLogger_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	otm := New[int, int](func(o *Options[int]) {
		o.Logger = logger
	})
	otm.Merge(New[int, int]())

	assert.Empty(t, buf.String())
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, NewLogger(nil))
	assert.NotNil(t, NewJSONLogger(slog.LevelDebug))
	assert.NotNil(t, NewTextLogger(slog.LevelInfo))

	noop := NoopLogger()
	assert.False(t, noop.Enabled(t.Context(), slog.LevelError))
}
