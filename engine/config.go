package engine

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/plus3/grit/ecs"
	"github.com/plus3/grit/render"
)

// Config is the engine's tunable surface, loadable from TOML.
type Config struct {
	World    WorldConfig    `toml:"world"`
	Renderer RendererConfig `toml:"renderer"`
	Logging  LoggingConfig  `toml:"logging"`
}

type WorldConfig struct {
	MaxEntities       int `toml:"max_entities"`
	MaxComponentTypes int `toml:"max_component_types"`
}

type RendererConfig struct {
	MaxQuads        int     `toml:"max_quads"`
	MaxLines        int     `toml:"max_lines"`
	MaxGlyphs       int     `toml:"max_glyphs"`
	MaxTextureSlots int     `toml:"max_texture_slots"`
	LineWidth       float32 `toml:"line_width"`
	PointSize       float32 `toml:"point_size"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			MaxEntities:       ecs.DefaultMaxEntities,
			MaxComponentTypes: ecs.DefaultMaxComponentTypes,
		},
		Renderer: RendererConfig{
			MaxQuads:        render.DefaultMaxQuads,
			MaxLines:        render.DefaultMaxLines,
			MaxGlyphs:       render.DefaultMaxGlyphs,
			MaxTextureSlots: render.DefaultMaxTextureSlots,
			LineWidth:       1,
			PointSize:       2,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig reads a TOML file over the defaults, so a partial file
// only overrides what it names.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) worldConfig() ecs.Config {
	return ecs.Config{
		MaxEntities:       c.World.MaxEntities,
		MaxComponentTypes: c.World.MaxComponentTypes,
	}
}

func (c Config) rendererConfig() render.Config {
	return render.Config{
		MaxQuads:        c.Renderer.MaxQuads,
		MaxLines:        c.Renderer.MaxLines,
		MaxGlyphs:       c.Renderer.MaxGlyphs,
		MaxTextureSlots: c.Renderer.MaxTextureSlots,
		LineWidth:       c.Renderer.LineWidth,
		PointSize:       c.Renderer.PointSize,
	}
}
