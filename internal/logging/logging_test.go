package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/dnd35-sheet/internal/errors"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLevel(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, level)
		})
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Level: "warn", Format: "text"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hidden")
	logger.Warn("shown", "character_id", "char-1")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "character_id=char-1")
}

func TestNewJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("character created", "class_id", "wizard")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "character created", record["msg"])
	assert.Equal(t, "wizard", record["class_id"])
}

func TestNewUnknownFormat(t *testing.T) {
	_, _, err := New(Config{Level: "info", Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.log")
	var console bytes.Buffer

	logger, closer, err := New(Config{
		Level:         "debug",
		Format:        "text",
		FilePath:      path,
		FileMaxSizeMB: 1,
	}, &console)
	require.NoError(t, err)

	logger.With("component", "test").Debug("to both outputs")
	require.NoError(t, closer.Close())

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "to both outputs")
	assert.Contains(t, string(contents), "component=test")
	assert.Contains(t, console.String(), "to both outputs")
}

func TestSetupInstallsDefault(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	closer, err := Setup(Config{Level: "info", Format: "text"}, &buf)
	require.NoError(t, err)
	defer closer.Close()

	slog.Info("via default")
	assert.Contains(t, buf.String(), "via default")
}
