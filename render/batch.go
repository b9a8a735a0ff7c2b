package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Target receives flushed batch geometry. *ebiten.Image satisfies it;
// tests substitute a recording fake.
type Target interface {
	DrawTriangles(vertices []ebiten.Vertex, indices []uint16, img *ebiten.Image, options *ebiten.DrawTrianglesOptions)
}

// SrcRect is a texel-space rectangle on a source texture.
type SrcRect struct {
	X0, Y0, X1, Y1 float32
}

// WholeTexture returns the SrcRect covering img entirely.
func WholeTexture(img *ebiten.Image) SrcRect {
	b := img.Bounds()
	return SrcRect{
		X0: float32(b.Min.X),
		Y0: float32(b.Min.Y),
		X1: float32(b.Max.X),
		Y1: float32(b.Max.Y),
	}
}

func vertexColor(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// texturedBatch accumulates four-vertex primitives sharing one vertex
// buffer, with indices bucketed per texture slot so each flush issues
// one draw call per referenced texture. Slot 0 is the solid fallback.
type texturedBatch struct {
	capacity int
	maxSlots int
	solid    *ebiten.Image

	vertices []ebiten.Vertex
	indices  [][]uint16
	textures []*ebiten.Image
	count    int
}

func newTexturedBatch(capacity, maxSlots int, solid *ebiten.Image) *texturedBatch {
	b := &texturedBatch{
		capacity: capacity,
		maxSlots: maxSlots,
		solid:    solid,
		vertices: make([]ebiten.Vertex, 0, capacity*4),
		indices:  make([][]uint16, maxSlots),
		textures: make([]*ebiten.Image, 1, maxSlots),
	}
	b.textures[0] = solid
	return b
}

func (b *texturedBatch) reset() {
	b.vertices = b.vertices[:0]
	for i := range b.indices {
		b.indices[i] = b.indices[i][:0]
	}
	b.textures = b.textures[:1]
	b.count = 0
}

func (b *texturedBatch) full() bool {
	return b.count >= b.capacity
}

// slotFor returns the texture's slot, assigning a new one when unseen.
// ok is false when the slot table is full; the caller must flush first.
// nil means the solid slot.
func (b *texturedBatch) slotFor(img *ebiten.Image) (slot int, ok bool) {
	if img == nil {
		return 0, true
	}
	for i, t := range b.textures {
		if t == img {
			return i, true
		}
	}
	if len(b.textures) >= b.maxSlots {
		return 0, false
	}
	b.textures = append(b.textures, img)
	return len(b.textures) - 1, true
}

// solidSrc returns the sampling point inside the solid texture. With a
// nil solid (non-GPU targets) any constant works.
func (b *texturedBatch) solidSrc() (float32, float32) {
	if b.solid == nil {
		return 0.5, 0.5
	}
	bounds := b.solid.Bounds()
	return float32(bounds.Min.X) + 0.5, float32(bounds.Min.Y) + 0.5
}

// push appends one four-corner primitive into the given slot. Corner
// order is TL, TR, BR, BL.
func (b *texturedBatch) push(slot int, corners [4]ebiten.Vertex) {
	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, corners[0], corners[1], corners[2], corners[3])
	b.indices[slot] = append(b.indices[slot],
		base, base+1, base+2,
		base, base+2, base+3,
	)
	b.count++
}

// flush uploads the accumulated geometry, one draw call per slot in
// use, and resets the batch.
func (b *texturedBatch) flush(target Target, stats *Stats) {
	if b.count == 0 {
		return
	}
	for slot := 0; slot < len(b.textures); slot++ {
		idx := b.indices[slot]
		if len(idx) == 0 {
			continue
		}
		target.DrawTriangles(b.vertices, idx, b.textures[slot], &ebiten.DrawTrianglesOptions{})
		stats.DrawCalls++
	}
	stats.Flushes++
	b.reset()
}

// lineBatch accumulates lines as thin two-triangle quads. Lines only
// ever sample the solid texture, so one flush is one draw call.
type lineBatch struct {
	capacity int
	solid    *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
	count    int
}

func newLineBatch(capacity int, solid *ebiten.Image) *lineBatch {
	return &lineBatch{
		capacity: capacity,
		solid:    solid,
		vertices: make([]ebiten.Vertex, 0, capacity*4),
		indices:  make([]uint16, 0, capacity*6),
	}
}

func (b *lineBatch) reset() {
	b.vertices = b.vertices[:0]
	b.indices = b.indices[:0]
	b.count = 0
}

func (b *lineBatch) full() bool {
	return b.count >= b.capacity
}

func (b *lineBatch) solidSrc() (float32, float32) {
	if b.solid == nil {
		return 0.5, 0.5
	}
	bounds := b.solid.Bounds()
	return float32(bounds.Min.X) + 0.5, float32(bounds.Min.Y) + 0.5
}

func (b *lineBatch) push(corners [4]ebiten.Vertex) {
	base := uint16(len(b.vertices))
	b.vertices = append(b.vertices, corners[0], corners[1], corners[2], corners[3])
	b.indices = append(b.indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
	b.count++
}

func (b *lineBatch) flush(target Target, stats *Stats) {
	if b.count == 0 {
		return
	}
	target.DrawTriangles(b.vertices, b.indices, b.solid, &ebiten.DrawTrianglesOptions{})
	stats.DrawCalls++
	stats.Flushes++
	b.reset()
}
