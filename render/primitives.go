package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawQuad batches an axis-aligned solid quad with its top-left corner
// at (x, y).
func (r *Renderer) DrawQuad(x, y, w, h float32, clr color.Color) {
	r.drawSolidQuad(x, y, w, h, clr)
	r.stats.Quads++
}

// DrawQuadRotated batches a solid quad rotated by angle radians around
// its center.
func (r *Renderer) DrawQuadRotated(x, y, w, h, angle float32, clr color.Color) {
	r.checkOpen(r.quadsOpen, "quad")
	if r.quads.full() {
		r.quads.flush(r.target, &r.stats)
	}

	cx, cy := x+w/2, y+h/2
	sin, cos := math.Sincos(float64(angle))
	s, c := float32(sin), float32(cos)

	rot := func(px, py float32) (float32, float32) {
		dx, dy := px-cx, py-cy
		return cx + dx*c - dy*s, cy + dx*s + dy*c
	}

	sx, sy := r.quads.solidSrc()
	cr, cg, cb, ca := vertexColor(clr)

	var corners [4]ebiten.Vertex
	points := [4][2]float32{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i, p := range points {
		vx, vy := rot(p[0], p[1])
		corners[i] = ebiten.Vertex{
			DstX: vx, DstY: vy,
			SrcX: sx, SrcY: sy,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}

	r.quads.push(0, corners)
	r.stats.Quads++
}

// DrawTexturedQuad batches a quad sampling the src rectangle of tex.
// When the batch's texture-slot table is full the batch flushes and the
// quad lands in the next one.
func (r *Renderer) DrawTexturedQuad(x, y, w, h float32, tex *ebiten.Image, src SrcRect, clr color.Color) {
	r.checkOpen(r.quadsOpen, "quad")
	if tex == nil {
		panic("render: DrawTexturedQuad with nil texture")
	}
	if r.quads.full() {
		r.quads.flush(r.target, &r.stats)
	}
	slot, ok := r.quads.slotFor(tex)
	if !ok {
		r.quads.flush(r.target, &r.stats)
		if slot, ok = r.quads.slotFor(tex); !ok {
			panic("render: no texture slot free after flush")
		}
	}

	r.quads.push(slot, texturedCorners(x, y, w, h, src, clr))
	r.stats.Quads++
}

// DrawGlyph batches one text glyph quad sampling the src rectangle of
// the font atlas.
func (r *Renderer) DrawGlyph(x, y, w, h float32, atlas *ebiten.Image, src SrcRect, clr color.Color) {
	r.checkOpen(r.glyphsOpen, "glyph")
	if atlas == nil {
		panic("render: DrawGlyph with nil atlas")
	}
	if r.glyphs.full() {
		r.glyphs.flush(r.target, &r.stats)
	}
	slot, ok := r.glyphs.slotFor(atlas)
	if !ok {
		r.glyphs.flush(r.target, &r.stats)
		if slot, ok = r.glyphs.slotFor(atlas); !ok {
			panic("render: no texture slot free after flush")
		}
	}

	r.glyphs.push(slot, texturedCorners(x, y, w, h, src, clr))
	r.stats.Glyphs++
}

// DrawLine batches a line segment, rendered as a quad of the
// configured line width.
func (r *Renderer) DrawLine(x1, y1, x2, y2 float32, clr color.Color) {
	r.checkOpen(r.linesOpen, "line")
	if r.lines.full() {
		r.lines.flush(r.target, &r.stats)
	}

	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		// Degenerate segment; render as a point so it stays visible.
		r.drawPointQuad(x1, y1, clr)
		r.stats.Lines++
		return
	}

	// Perpendicular offset of half the line width.
	half := r.cfg.LineWidth / 2
	nx := -dy / length * half
	ny := dx / length * half

	sx, sy := r.lines.solidSrc()
	cr, cg, cb, ca := vertexColor(clr)

	corners := [4]ebiten.Vertex{
		{DstX: x1 + nx, DstY: y1 + ny, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2 + nx, DstY: y2 + ny, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x2 - nx, DstY: y2 - ny, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x1 - nx, DstY: y1 - ny, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	r.lines.push(corners)
	r.stats.Lines++
}

// DrawPoint batches a point, rendered as a small quad of the configured
// point size centered on (x, y).
func (r *Renderer) DrawPoint(x, y float32, clr color.Color) {
	r.checkOpen(r.linesOpen, "line")
	if r.lines.full() {
		r.lines.flush(r.target, &r.stats)
	}
	r.drawPointQuad(x, y, clr)
	r.stats.Points++
}

func (r *Renderer) drawPointQuad(x, y float32, clr color.Color) {
	half := r.cfg.PointSize / 2
	sx, sy := r.lines.solidSrc()
	cr, cg, cb, ca := vertexColor(clr)

	corners := [4]ebiten.Vertex{
		{DstX: x - half, DstY: y - half, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x + half, DstY: y - half, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x + half, DstY: y + half, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x - half, DstY: y + half, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	r.lines.push(corners)
}

func (r *Renderer) drawSolidQuad(x, y, w, h float32, clr color.Color) {
	r.checkOpen(r.quadsOpen, "quad")
	if r.quads.full() {
		r.quads.flush(r.target, &r.stats)
	}

	sx, sy := r.quads.solidSrc()
	cr, cg, cb, ca := vertexColor(clr)

	corners := [4]ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x + w, DstY: y, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x + w, DstY: y + h, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x, DstY: y + h, SrcX: sx, SrcY: sy, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
	r.quads.push(0, corners)
}

func texturedCorners(x, y, w, h float32, src SrcRect, clr color.Color) [4]ebiten.Vertex {
	cr, cg, cb, ca := vertexColor(clr)
	return [4]ebiten.Vertex{
		{DstX: x, DstY: y, SrcX: src.X0, SrcY: src.Y0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x + w, DstY: y, SrcX: src.X1, SrcY: src.Y0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x + w, DstY: y + h, SrcX: src.X1, SrcY: src.Y1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		{DstX: x, DstY: y + h, SrcX: src.X0, SrcY: src.Y1, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	}
}
