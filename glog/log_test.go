package glog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObserver(t *testing.T) *observer.ObservedLogs {
	t.Helper()

	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	core, logs := observer.New(zapcore.InfoLevel)
	SetLogger(zap.New(core))
	return logs
}

func TestLevelsReachLogger(t *testing.T) {
	logs := withObserver(t)

	Info("plain ", 1)
	InfoF("after %s() glError (0x%x)", "glClear", 0x502)
	Warn("careful")
	ErrorF("Could not link program:\n%s", "bad")

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "plain 1", entries[0].Message)
	assert.Equal(t, "after glClear() glError (0x502)", entries[1].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
	assert.Equal(t, "Could not link program:\nbad", entries[3].Message)
}

func TestNilLoggerIsSilent(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	SetLogger(nil)
	assert.NotPanics(t, func() {
		Info("x")
		InfoF("%d", 1)
		Warn("x")
		WarnF("%d", 1)
		Error("x")
		ErrorF("%d", 1)
		Sync()
	})
}

func TestSetupWritesRotatedFile(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	logDir := filepath.Join(t.TempDir(), "log")
	require.NoError(t, Setup(Options{Mode: ModeRelease, Dir: logDir}))

	Info("setupGraphics(800, 600)")
	Sync()

	files, err := filepath.Glob(filepath.Join(logDir, "app_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(data), "setupGraphics(800, 600)")
	assert.Contains(t, string(data), "[INFO]")
}

func TestSetupRejectsFilePath(t *testing.T) {
	prev := Logger()
	t.Cleanup(func() { SetLogger(prev) })

	filePath := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(filePath, []byte("x"), 0644))

	assert.Error(t, Setup(Options{Dir: filePath}))
	assert.Same(t, prev, Logger())
}
