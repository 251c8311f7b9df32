package observability

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/oliverbestmann/bykegraph/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

// decodeLines parses every line of json log output.
func decodeLines(t *testing.T, output string) []map[string]any {
	t.Helper()

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		if line == "" {
			continue
		}

		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}

	return entries
}

func initForTest(t *testing.T, cfg config.LoggerConfig) *bytes.Buffer {
	t.Helper()

	ResetForTest()
	t.Cleanup(ResetForTest)

	var buf bytes.Buffer
	Initialize(cfg, zapcore.AddSync(&buf))
	return &buf
}

func TestInitialize_Json(t *testing.T) {
	buf := initForTest(t, config.LoggerConfig{
		Level:       "info",
		Format:      "json",
		ServiceName: "graphhit-test",
	})

	GetLogger().Info("Loaded scene")
	GetLogger().Debug("Hidden")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)

	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Loaded scene", entries[0]["msg"])
	assert.Equal(t, "graphhit-test", entries[0]["logger"])
}

func TestInitialize_Console(t *testing.T) {
	buf := initForTest(t, config.LoggerConfig{
		Level:  "debug",
		Format: "console",
	})

	GetLogger().Debug("This is a test message.")

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "This is a test message.")
}

func TestInitialize_OnlyOnce(t *testing.T) {
	buf := initForTest(t, config.LoggerConfig{Level: "info", Format: "json"})

	var other bytes.Buffer
	Initialize(config.LoggerConfig{Level: "debug", Format: "json"}, zapcore.AddSync(&other))

	GetLogger().Info("first")

	assert.Contains(t, buf.String(), "first")
	assert.Empty(t, other.String())
}

func TestInitialize_InvalidLevel(t *testing.T) {
	buf := initForTest(t, config.LoggerConfig{Level: "loud", Format: "json"})

	GetLogger().Debug("hidden")
	GetLogger().Info("visible")

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 1)
	assert.Equal(t, "visible", entries[0]["msg"])
}

func TestInitialize_LogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graphhit.log")

	initForTest(t, config.LoggerConfig{
		Level:   "info",
		Format:  "console",
		LogFile: path,
		MaxSize: 1,
	})

	GetLogger().Warn("Written to file")
	Sync()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	entries := decodeLines(t, string(content))
	require.Len(t, entries, 1)
	assert.Equal(t, "Written to file", entries[0]["msg"])
}

func TestSlogBridge(t *testing.T) {
	buf := initForTest(t, config.LoggerConfig{Level: "warn", Format: "json"})

	slog.Info("Not enabled")
	slog.Warn("Transform hierarchy broken, missing parent",
		slog.Int("nodeId", 3),
		slog.Group("parent", slog.Int("id", 1), slog.String("name", "root")))

	slog.With(slog.String("scene", "test.yaml")).WithGroup("query").Error("Failed", slog.Bool("cancelled", true))

	entries := decodeLines(t, buf.String())
	require.Len(t, entries, 2)

	assert.Equal(t, "WARN", entries[0]["level"])
	assert.Equal(t, float64(3), entries[0]["nodeId"])
	assert.Equal(t, float64(1), entries[0]["parent.id"])
	assert.Equal(t, "root", entries[0]["parent.name"])

	assert.Equal(t, "ERROR", entries[1]["level"])
	assert.Equal(t, "test.yaml", entries[1]["scene"])
	assert.Equal(t, true, entries[1]["query.cancelled"])
}

func TestGetLogger_Fallback(t *testing.T) {
	ResetForTest()
	require.NotNil(t, GetLogger())
}

// failingSyncer accepts writes but fails to sync.
type failingSyncer struct {
	bytes.Buffer
	err error
}

func (f *failingSyncer) Sync() error {
	return f.err
}

func TestSync_Errors(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		reported bool
	}{
		{"stderr", &os.PathError{Op: "sync", Path: "/dev/stderr", Err: syscall.EINVAL}, false},
		{"stdout", &os.PathError{Op: "sync", Path: "/dev/stdout", Err: syscall.ENOTTY}, false},
		{"not supported", &os.PathError{Op: "sync", Path: "/tmp/pipe", Err: syscall.ENOTSUP}, false},
		{"disk full", errors.New("no space left on device"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ResetForTest()
			t.Cleanup(ResetForTest)

			var output bytes.Buffer
			syncErrorOutput = &output
			t.Cleanup(func() { syncErrorOutput = os.Stderr })

			Initialize(config.LoggerConfig{Level: "info", Format: "json"}, &failingSyncer{err: tc.err})
			GetLogger().Info("Before sync")
			Sync()

			if tc.reported {
				assert.Contains(t, output.String(), "failed to sync logger: no space left on device")
			} else {
				assert.Empty(t, output.String())
			}
		})
	}
}
