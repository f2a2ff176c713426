package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captured(t *testing.T, l *Logger) (*Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return &Logger{l.Output(&buf)}, &buf
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), buf.String())
	return entry
}

func TestNewLogger_EntryFields(t *testing.T) {
	l, buf := captured(t, NewLogger("dev-connector-server"))

	l.Info().Str("post_id", "p1").Msg("post created")

	entry := lastEntry(t, buf)
	assert.Equal(t, "dev-connector-server", entry["role"])
	assert.Equal(t, "p1", entry["post_id"])
	assert.Equal(t, "post created", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestNewLogger_WithLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	tests := []struct {
		level string
		want  zerolog.Level
	}{
		{level: "", want: zerolog.DebugLevel},
		{level: "info", want: zerolog.InfoLevel},
		{level: "warn", want: zerolog.WarnLevel},
		{level: "loud", want: zerolog.DebugLevel},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			NewLogger("server", WithLevel(tt.level))
			assert.Equal(t, tt.want, zerolog.GlobalLevel())
		})
	}
}

func TestNewLogger_WithLevelFiltersEntries(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })

	l, buf := captured(t, NewLogger("server", WithLevel("warn")))
	l.Info().Msg("dropped")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("kept")
	assert.Equal(t, "kept", lastEntry(t, buf)["message"])
}

func TestNewLogger_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")

	l := NewLogger("file-role", WithFile(path))
	l.Info().Msg("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"role":"file-role"`)
	assert.Contains(t, string(data), "to file")
}

func TestNop(t *testing.T) {
	l, buf := captured(t, Nop())
	l.Error().Msg("discarded")

	assert.Zero(t, buf.Len())
}

func TestGetChildLogger(t *testing.T) {
	parent, buf := captured(t, NewLogger("parent-role"))

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)

	child.Logger = child.With().Str("trace_id", "abc").Logger()
	child.Info().Msg("child")
	entry := lastEntry(t, buf)
	assert.Equal(t, "parent-role", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])

	buf.Reset()
	parent.Info().Msg("parent")
	assert.NotContains(t, lastEntry(t, buf), "trace_id")
}

func TestFromContextAndRequest(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "t-1").Logger()
	ctx := zl.WithContext(context.Background())

	FromContext(ctx).Info().Msg("ctx")
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])

	buf.Reset()
	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil).WithContext(ctx)
	FromRequest(req).Info().Msg("req")
	assert.Equal(t, "t-1", lastEntry(t, &buf)["trace_id"])
}

func TestFromContext_WithoutLogger(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
	require.NotNil(t, FromRequest(httptest.NewRequest(http.MethodGet, "/", nil)))
}
