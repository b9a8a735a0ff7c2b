// Package render is a batched immediate-mode 2D renderer. Draw calls
// accumulate quads, lines and text glyphs into bounded vertex buffers
// and flush to the target when a batch fills, when its texture-slot
// table fills, or when the batch ends. A primitive that would overflow
// a batch spills into a fresh one; it is never dropped.
package render

import "fmt"

// Stats aggregates per-frame renderer counters. Counters accumulate
// until ResetStats, typically called once per frame.
type Stats struct {
	DrawCalls int
	Flushes   int
	Quads     int
	Lines     int
	Glyphs    int
	Points    int
}

// Renderer owns the batch buffers. Buffers are allocated once at New
// and released at Shutdown; nothing is allocated per frame.
type Renderer struct {
	cfg    Config
	target Target

	quads  *texturedBatch
	glyphs *texturedBatch
	lines  *lineBatch

	stats Stats

	quadsOpen  bool
	linesOpen  bool
	glyphsOpen bool
	dead       bool
}

// New allocates a renderer sized by cfg.
func New(cfg Config) (*Renderer, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("renderer config: %w", err)
	}
	return &Renderer{
		cfg:    cfg,
		quads:  newTexturedBatch(cfg.MaxQuads, cfg.MaxTextureSlots, cfg.SolidTexture),
		glyphs: newTexturedBatch(cfg.MaxGlyphs, cfg.MaxTextureSlots, cfg.SolidTexture),
		lines:  newLineBatch(cfg.MaxLines, cfg.SolidTexture),
	}, nil
}

// Config returns the renderer's effective configuration.
func (r *Renderer) Config() Config { return r.cfg }

// Begin starts all three batch families against the given target.
func (r *Renderer) Begin(target Target) {
	r.checkLive()
	if target == nil {
		panic("render: Begin with nil target")
	}
	r.target = target
	r.BeginQuads()
	r.BeginLines()
	r.BeginGlyphs()
}

// End flushes and closes every open batch family.
func (r *Renderer) End() {
	r.checkLive()
	if r.quadsOpen {
		r.EndQuads()
	}
	if r.linesOpen {
		r.EndLines()
	}
	if r.glyphsOpen {
		r.EndGlyphs()
	}
}

// BeginQuads resets the quad batch write pointer.
func (r *Renderer) BeginQuads() {
	r.checkTarget()
	r.quads.reset()
	r.quadsOpen = true
}

// FlushQuads uploads and draw-calls the pending quads, leaving the
// batch open for more.
func (r *Renderer) FlushQuads() {
	r.checkOpen(r.quadsOpen, "quad")
	r.quads.flush(r.target, &r.stats)
}

// EndQuads flushes and closes the quad batch.
func (r *Renderer) EndQuads() {
	r.FlushQuads()
	r.quadsOpen = false
}

// BeginLines resets the line batch write pointer.
func (r *Renderer) BeginLines() {
	r.checkTarget()
	r.lines.reset()
	r.linesOpen = true
}

// FlushLines uploads and draw-calls the pending lines, leaving the
// batch open for more.
func (r *Renderer) FlushLines() {
	r.checkOpen(r.linesOpen, "line")
	r.lines.flush(r.target, &r.stats)
}

// EndLines flushes and closes the line batch.
func (r *Renderer) EndLines() {
	r.FlushLines()
	r.linesOpen = false
}

// BeginGlyphs resets the glyph batch write pointer.
func (r *Renderer) BeginGlyphs() {
	r.checkTarget()
	r.glyphs.reset()
	r.glyphsOpen = true
}

// FlushGlyphs uploads and draw-calls the pending glyphs, leaving the
// batch open for more.
func (r *Renderer) FlushGlyphs() {
	r.checkOpen(r.glyphsOpen, "glyph")
	r.glyphs.flush(r.target, &r.stats)
}

// EndGlyphs flushes and closes the glyph batch.
func (r *Renderer) EndGlyphs() {
	r.FlushGlyphs()
	r.glyphsOpen = false
}

// Stats returns the counters accumulated since the last ResetStats.
func (r *Renderer) Stats() Stats { return r.stats }

// ResetStats zeroes the frame counters.
func (r *Renderer) ResetStats() { r.stats = Stats{} }

// Shutdown releases the batch buffers. The renderer is unusable
// afterwards; the solid texture belongs to the caller and is not
// touched.
func (r *Renderer) Shutdown() {
	if r.dead {
		return
	}
	r.dead = true
	r.target = nil
	r.quads = nil
	r.glyphs = nil
	r.lines = nil
}

func (r *Renderer) checkLive() {
	if r.dead {
		panic("render: use after Shutdown")
	}
}

func (r *Renderer) checkTarget() {
	r.checkLive()
	if r.target == nil {
		panic("render: batch begun before Begin(target)")
	}
}

func (r *Renderer) checkOpen(open bool, family string) {
	r.checkLive()
	if !open {
		panic("render: " + family + " batch is not open")
	}
}
