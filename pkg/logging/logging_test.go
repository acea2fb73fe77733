package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"gitlab.com/tinyland/lab/orbit-reader/pkg/config"
)

func readLines(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var out []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		out = append(out, m)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestFileLoggerWritesJSONWithSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "orbit.log")
	log, cleanup, err := New(Options{Name: "orbit", Level: "info", File: path, MaxSizeMB: 1})
	require.NoError(t, err)

	log.Debug("dropped")
	log.Info("viewport changed", zap.String("class", "mobile"))
	cleanup()

	lines := readLines(t, path)
	require.Len(t, lines, 1)
	assert.Equal(t, "viewport changed", lines[0]["msg"])
	assert.Equal(t, "INFO", lines[0]["level"])
	assert.Equal(t, "orbit", lines[0]["logger"])
	assert.Equal(t, "mobile", lines[0]["class"])

	_, err = uuid.Parse(lines[0]["session"].(string))
	assert.NoError(t, err)
}

func TestSessionIsStablePerLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orbit.log")
	log, cleanup, err := New(Options{File: path})
	require.NoError(t, err)
	log.Info("one")
	log.Named("dock").Info("two")
	cleanup()

	lines := readLines(t, path)
	require.Len(t, lines, 2)
	assert.Equal(t, lines[0]["session"], lines[1]["session"])
}

func TestConsoleCore(t *testing.T) {
	var buf bytes.Buffer
	log, cleanup, err := New(Options{Level: "debug", Console: zapcore.AddSync(&buf)})
	require.NoError(t, err)
	log.Debug("hello")
	cleanup()
	assert.Contains(t, buf.String(), "hello")
}

func TestNoOutputsIsNop(t *testing.T) {
	log, cleanup, err := New(Options{})
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, log.Core().Enabled(zapcore.ErrorLevel))
}

func TestInvalidLevel(t *testing.T) {
	_, _, err := New(Options{Level: "shouty"})
	assert.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.General.LogLevel = "debug"
	cfg.Logging.Compress = true
	o := FromConfig(cfg)
	assert.Equal(t, "debug", o.Level)
	assert.Equal(t, cfg.General.LogFile, o.File)
	assert.True(t, o.Compress)
	assert.Nil(t, o.Console)
}
