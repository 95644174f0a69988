package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youth_policy_ai/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestNewHandler_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, "info", "json"))
	l.Info("corpus loaded", "policies", 3)
	l.Debug("hidden")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "corpus loaded", line["msg"])
	assert.Equal(t, float64(3), line["policies"])
}

func TestWith_AddsAttributes(t *testing.T) {
	prev := Logger
	defer func() { Logger = prev }()

	var buf bytes.Buffer
	Logger = slog.New(NewHandler(&buf, "info", "json"))

	With("component", "scheduler").Info("Caches reset", "entries_cleared", 2)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "scheduler", line["component"])
	assert.Equal(t, float64(2), line["entries_cleared"])
}

func TestInit_FileOutput(t *testing.T) {
	prev := Logger
	defer func() {
		Logger = prev
		slog.SetDefault(prev)
	}()

	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Log.Output = "file"
	cfg.Log.FilePath = filepath.Join(t.TempDir(), "nested", "app.log")

	require.NoError(t, Init(cfg))
	Info("hello")
	assert.FileExists(t, cfg.Log.FilePath)
}

func TestHelpersUsableBeforeInit(t *testing.T) {
	assert.NotPanics(t, func() {
		Debug("debug")
		Info("info")
		Warn("warn")
		Error("error")
		With("component", "test").Info("with")
	})
}
