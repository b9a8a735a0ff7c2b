// Package engine is the composition root: it ties the entity world,
// the renderer and the ambient services (config, logging) into one
// Context that game code threads through its systems.
package engine

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/plus3/grit/ecs"
	"github.com/plus3/grit/render"
)

// Context bundles the services available to every system. Renderer is
// nil until InitRenderer, which needs the graphics environment and so
// cannot run before the game loop starts.
type Context struct {
	Config   Config
	Log      *zap.Logger
	World    *ecs.World
	Renderer *render.Renderer

	solid *ebiten.Image
}

// NewContext builds the world and logger from cfg. It touches no
// graphics state and is safe in headless tests.
func NewContext(cfg Config) (*Context, error) {
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return &Context{
		Config: cfg,
		Log:    log,
		World:  ecs.NewWorld(cfg.worldConfig()),
	}, nil
}

// InitRenderer creates the solid white fallback texture and the
// renderer. Call it once the graphics environment exists, typically
// from the first Draw.
func (c *Context) InitRenderer() error {
	if c.Renderer != nil {
		return nil
	}

	// 3x3 white image; the renderer samples the center texel so that
	// filtering never bleeds past the edge.
	c.solid = ebiten.NewImage(3, 3)
	c.solid.Fill(color.White)

	rcfg := c.Config.rendererConfig()
	rcfg.SolidTexture = c.solid.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

	r, err := render.New(rcfg)
	if err != nil {
		c.solid.Deallocate()
		c.solid = nil
		return err
	}
	c.Renderer = r

	c.Log.Info("renderer ready",
		zap.Int("max_quads", rcfg.MaxQuads),
		zap.Int("max_lines", rcfg.MaxLines),
		zap.Int("max_glyphs", rcfg.MaxGlyphs),
		zap.Int("texture_slots", rcfg.MaxTextureSlots),
	)
	return nil
}

// Shutdown releases the renderer and flushes the logger. Safe to call
// more than once.
func (c *Context) Shutdown() {
	if c.Renderer != nil {
		c.Renderer.Shutdown()
		c.Renderer = nil
	}
	if c.solid != nil {
		c.solid.Deallocate()
		c.solid = nil
	}
	if c.Log != nil {
		_ = c.Log.Sync()
	}
}

func newLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
