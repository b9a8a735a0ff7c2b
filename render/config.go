package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultMaxQuads bounds one quad batch. Indices are 16-bit, so a
	// batch can never exceed maxQuadCapacity regardless of config.
	DefaultMaxQuads = 8192

	// DefaultMaxLines bounds one line batch. Lines are drawn as thin
	// two-triangle strips, four vertices each, same index math as quads.
	DefaultMaxLines = 8192

	// DefaultMaxGlyphs bounds one glyph batch.
	DefaultMaxGlyphs = 4096

	// DefaultMaxTextureSlots is the number of textures one quad or
	// glyph batch may reference before rolling over. Slot 0 is always
	// the solid fallback texture.
	DefaultMaxTextureSlots = 16

	// maxQuadCapacity is the hard ceiling imposed by uint16 indices:
	// four vertices per primitive, 65536 addressable vertices.
	maxQuadCapacity = 16383
)

// Config sizes the renderer's batch buffers. Zero fields take the
// package defaults.
//
// SolidTexture is the slot-0 fallback used for untextured primitives.
// The renderer does not create GPU resources itself; the engine context
// owns the texture and hands it in. Leaving it nil is only valid when
// flushing into a non-GPU Target.
type Config struct {
	MaxQuads        int
	MaxLines        int
	MaxGlyphs       int
	MaxTextureSlots int

	LineWidth float32
	PointSize float32

	SolidTexture *ebiten.Image
}

func (c Config) withDefaults() Config {
	if c.MaxQuads <= 0 {
		c.MaxQuads = DefaultMaxQuads
	}
	if c.MaxLines <= 0 {
		c.MaxLines = DefaultMaxLines
	}
	if c.MaxGlyphs <= 0 {
		c.MaxGlyphs = DefaultMaxGlyphs
	}
	if c.MaxTextureSlots <= 0 {
		c.MaxTextureSlots = DefaultMaxTextureSlots
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 1
	}
	if c.PointSize <= 0 {
		c.PointSize = 2
	}
	return c
}

func (c Config) validate() error {
	if c.MaxQuads > maxQuadCapacity {
		return fmt.Errorf("max quads %d exceeds index capacity %d", c.MaxQuads, maxQuadCapacity)
	}
	if c.MaxLines > maxQuadCapacity {
		return fmt.Errorf("max lines %d exceeds index capacity %d", c.MaxLines, maxQuadCapacity)
	}
	if c.MaxGlyphs > maxQuadCapacity {
		return fmt.Errorf("max glyphs %d exceeds index capacity %d", c.MaxGlyphs, maxQuadCapacity)
	}
	if c.MaxTextureSlots < 2 {
		return fmt.Errorf("max texture slots %d, need the solid slot plus at least one texture", c.MaxTextureSlots)
	}
	return nil
}
