package engine_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/grit/ecs"
	"github.com/plus3/grit/engine"
	"github.com/plus3/grit/render"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	assert.Equal(t, ecs.DefaultMaxEntities, cfg.World.MaxEntities)
	assert.Equal(t, ecs.DefaultMaxComponentTypes, cfg.World.MaxComponentTypes)
	assert.Equal(t, render.DefaultMaxQuads, cfg.Renderer.MaxQuads)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigPartialOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
[world]
max_entities = 500

[renderer]
max_quads = 1024
line_width = 2.0

[logging]
level = "debug"
`)

	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 500, cfg.World.MaxEntities)
	assert.Equal(t, 1024, cfg.Renderer.MaxQuads)
	assert.Equal(t, float32(2), cfg.Renderer.LineWidth)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unnamed fields keep their defaults.
	assert.Equal(t, ecs.DefaultMaxComponentTypes, cfg.World.MaxComponentTypes)
	assert.Equal(t, render.DefaultMaxLines, cfg.Renderer.MaxLines)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := engine.LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "[world\nmax_entities = ")
	_, err := engine.LoadConfig(path)
	assert.Error(t, err)
}

func TestNewContextIsHeadlessSafe(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.World.MaxEntities = 64

	ctx, err := engine.NewContext(cfg)
	require.NoError(t, err)
	defer ctx.Shutdown()

	require.NotNil(t, ctx.World)
	require.NotNil(t, ctx.Log)
	assert.Nil(t, ctx.Renderer, "renderer waits for InitRenderer")

	e := ctx.World.CreateEntity()
	assert.True(t, ctx.World.Alive(e))
}

func TestContextShutdownIdempotent(t *testing.T) {
	ctx, err := engine.NewContext(engine.DefaultConfig())
	require.NoError(t, err)

	ctx.Shutdown()
	assert.NotPanics(t, func() { ctx.Shutdown() })
}

func TestNewContextBadLogLevelFallsBack(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Logging.Level = "chatty"

	ctx, err := engine.NewContext(cfg)
	require.NoError(t, err)
	ctx.Shutdown()
}
