package gconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chwjbn/gl2-demo/glib"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, WindowConfig{Width: 800, Height: 600, Title: "gl2demo", SwapInterval: 1}, cfg.Window)
	assert.Equal(t, "debug", cfg.Log.Mode)
	assert.Equal(t, glib.AppPath("log"), cfg.Log.Dir)
	assert.Equal(t, 24*time.Hour, cfg.Log.MaxAge)
	assert.Equal(t, glib.AppPath("data", "effect"), cfg.Render.EffectDir)
	assert.Empty(t, cfg.Render.Effect)
	assert.Zero(t, cfg.Render.MaxFrames)
	assert.Empty(t, cfg.Capture.Path)
}

func TestLoadFlagDefaultsDoNotOverride(t *testing.T) {
	t.Setenv("GL2DEMO_WINDOW_WIDTH", "1024")

	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse(nil))

	cfg, err := Load(flags)
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
}

func TestLoadPriority(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(
		"window:\n  title: cube\n  width: 640\n  height: 480\nlog:\n  max_age: 48h\nrender:\n  effect: file\n"), 0644))

	t.Setenv("GL2DEMO_WINDOW_WIDTH", "1280")
	t.Setenv("GL2DEMO_RENDER_EFFECT", "env")

	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--config", configFile, "--effect=soul", "--frames", "100", "--capture", "last.png"}))

	cfg, err := Load(flags)
	require.NoError(t, err)

	assert.Equal(t, "cube", cfg.Window.Title)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 480, cfg.Window.Height)
	assert.Equal(t, 48*time.Hour, cfg.Log.MaxAge)
	assert.Equal(t, "soul", cfg.Render.Effect)
	assert.Equal(t, 100, cfg.Render.MaxFrames)
	assert.Equal(t, "last.png", cfg.Capture.Path)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "nope.yaml")}))

	_, err := Load(flags)
	assert.Error(t, err)
}

func TestLoadRejectsBadSize(t *testing.T) {
	flags := NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--width=0"}))

	_, err := Load(flags)
	assert.Error(t, err)

	flags = NewFlagSet("test")
	require.NoError(t, flags.Parse([]string{"--frames=-2"}))

	_, err = Load(flags)
	assert.Error(t, err)
}
