package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileLogger(t *testing.T, level Level, jsonFormat bool) *Logger {
	t.Helper()
	logger, err := New(&Config{
		Level:      level,
		LogDir:     t.TempDir(),
		JSONFormat: jsonFormat,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func readLog(t *testing.T, logger *Logger) string {
	t.Helper()
	content, err := os.ReadFile(logger.LogPath())
	require.NoError(t, err)
	return string(content)
}

func TestNew(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(&Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	})
	require.NoError(t, err)
	defer logger.Close()

	assert.DirExists(t, logDir)
	require.NotEmpty(t, logger.LogPath())
	assert.FileExists(t, logger.LogPath())
	assert.True(t, strings.HasPrefix(filepath.Base(logger.LogPath()), "mixadd_"))
}

func TestNew_NoLogDir(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(&Config{
		Level:         LevelInfo,
		Console:       true,
		ConsoleWriter: &console,
	})
	require.NoError(t, err)
	defer logger.Close()

	assert.Empty(t, logger.LogPath())
	logger.Info("console only")
	assert.Contains(t, console.String(), "console only")
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	require.NotNil(t, logger)

	assert.NotPanics(t, func() {
		logger.Debug("test")
		logger.Info("test")
		logger.Warn("test")
		logger.Error("test")
	})
}

func TestLogLevels(t *testing.T) {
	logger := newFileLogger(t, LevelDebug, false)

	logger.Debug("debug message", "key", "value")
	logger.Info("info message", "key", "value")
	logger.Warn("warn message", "key", "value")
	logger.Error("error message", "key", "value")

	content := readLog(t, logger)
	for _, msg := range []string{"debug message", "info message", "warn message", "error message"} {
		assert.Contains(t, content, msg)
	}
}

func TestLogLevelFiltering(t *testing.T) {
	logger := newFileLogger(t, LevelWarn, false)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error("error message")

	content := readLog(t, logger)
	assert.NotContains(t, content, "debug message")
	assert.NotContains(t, content, "info message")
	assert.Contains(t, content, "warn message")
	assert.Contains(t, content, "error message")
}

func TestJSONFormat(t *testing.T) {
	logger := newFileLogger(t, LevelInfo, true)

	logger.Info("test message", "key", "value")

	content := readLog(t, logger)
	assert.Contains(t, content, `"msg":"test message"`)
	assert.Contains(t, content, `"key":"value"`)
}

func TestConsoleOutput(t *testing.T) {
	var console bytes.Buffer
	logger, err := New(&Config{
		Level:         LevelInfo,
		LogDir:        t.TempDir(),
		Console:       true,
		ConsoleWriter: &console,
	})
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("console test")

	assert.Contains(t, console.String(), "console test")
	assert.Contains(t, readLog(t, logger), "console test")
}

func TestWith(t *testing.T) {
	logger := newFileLogger(t, LevelInfo, false)

	logger.With("package", "pow").Info("selected")

	assert.Contains(t, readLog(t, logger), "package=pow")
}

func TestWithContext(t *testing.T) {
	logger := newFileLogger(t, LevelInfo, false)

	ctx := WithQuery(context.Background(), "pow")
	ctx = WithProjectDir(ctx, "/work/app")

	logger.WithContext(ctx).Info("context message")

	content := readLog(t, logger)
	assert.Contains(t, content, "query=pow")
	assert.Contains(t, content, "project_dir=/work/app")
}

func TestWriter(t *testing.T) {
	logger := newFileLogger(t, LevelInfo, false)

	writer := logger.Writer(LevelInfo)
	_, err := writer.Write([]byte("line one\r\nline two\n"))
	require.NoError(t, err)

	content := readLog(t, logger)
	assert.Contains(t, content, "line one")
	assert.Contains(t, content, "line two")
}

func TestWriterFlush(t *testing.T) {
	logger := newFileLogger(t, LevelInfo, false)

	writer := logger.Writer(LevelInfo)
	_, _ = writer.Write([]byte("partial line"))
	assert.NotContains(t, readLog(t, logger), "partial line")

	writer.Flush()
	assert.Contains(t, readLog(t, logger), "partial line")
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	for i := 0; i < 15; i++ {
		name := filepath.Join(tmpDir, "mixadd_20240101_0000"+string(rune('a'+i))+".log")
		require.NoError(t, os.WriteFile(name, []byte("test"), 0644))
	}
	// Files without the prefix are left alone.
	other := filepath.Join(tmpDir, "other.log")
	require.NoError(t, os.WriteFile(other, []byte("keep"), 0644))

	logger, err := New(&Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 5,
	})
	require.NoError(t, err)
	require.NoError(t, logger.Cleanup())
	require.NoError(t, logger.Close())

	entries, err := os.ReadDir(tmpDir)
	require.NoError(t, err)

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "mixadd_") {
			count++
		}
	}
	assert.LessOrEqual(t, count, 6)
	assert.FileExists(t, other)
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.level.String())
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	assert.Equal(t, LevelInfo, config.Level)
	assert.Equal(t, DefaultLogDir(), config.LogDir)
	assert.Equal(t, 10, config.MaxLogFiles)
	assert.Equal(t, 7*24*time.Hour, config.MaxLogAge)
	assert.False(t, config.Console)
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 5, indexOf([]byte("hello\nworld"), '\n'))
	assert.Equal(t, -1, indexOf([]byte("hello"), '\n'))
	assert.Equal(t, -1, indexOf([]byte(""), '\n'))
}
