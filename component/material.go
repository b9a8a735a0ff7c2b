package component

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/grit/render"
)

// Color is an 8-bit RGBA tint. It satisfies image/color.Color so it can
// be handed straight to the renderer.
type Color struct {
	R, G, B, A uint8
}

func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

// White is the neutral tint.
var White = Color{255, 255, 255, 255}

// Material describes how an entity is drawn. A nil Texture renders as a
// solid tinted quad; otherwise Src selects the texel region to sample.
type Material struct {
	Texture *ebiten.Image
	Src     render.SrcRect
	Tint    Color
	Visible bool
}

// NewMaterial returns a visible solid-color material.
func NewMaterial(tint Color) Material {
	return Material{Tint: tint, Visible: true}
}

// NewTexturedMaterial returns a visible material sampling all of tex.
func NewTexturedMaterial(tex *ebiten.Image) Material {
	return Material{
		Texture: tex,
		Src:     render.WholeTexture(tex),
		Tint:    White,
		Visible: true,
	}
}
