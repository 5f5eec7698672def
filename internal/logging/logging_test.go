package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worksheetz.log")
	log, err := New(Options{Level: "warn", Production: true, File: path})
	require.NoError(t, err)

	log.Info("dropped")
	log.Warn("kept", zap.String("module", "arithmetic"))
	Sync(log)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "arithmetic", entry["module"])
	assert.Contains(t, entry, "timestamp")
}

func TestNewConsoleDefaultsToInfo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dev.log")
	log, err := New(Options{File: path})
	require.NoError(t, err)

	log.Debug("hidden")
	log.Info("shown")
	Sync(log)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "INFO")
	assert.Contains(t, string(data), "shown")
}
