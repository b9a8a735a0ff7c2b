package render

import (
	"image/color"
	"math"
)

// DrawWireQuad batches the four edges of a quad as lines.
func (r *Renderer) DrawWireQuad(x, y, w, h float32, clr color.Color) {
	r.DrawLine(x, y, x+w, y, clr)
	r.DrawLine(x+w, y, x+w, y+h, clr)
	r.DrawLine(x+w, y+h, x, y+h, clr)
	r.DrawLine(x, y+h, x, y, clr)
}

// DrawArrow batches a line from (x1, y1) to (x2, y2) with a two-stroke
// head at the tip. headSize is the head stroke length in pixels.
func (r *Renderer) DrawArrow(x1, y1, x2, y2, headSize float32, clr color.Color) {
	r.DrawLine(x1, y1, x2, y2, clr)

	angle := math.Atan2(float64(y2-y1), float64(x2-x1))
	const spread = math.Pi / 6

	for _, side := range [2]float64{spread, -spread} {
		a := angle + math.Pi + side
		hx := x2 + headSize*float32(math.Cos(a))
		hy := y2 + headSize*float32(math.Sin(a))
		r.DrawLine(x2, y2, hx, hy, clr)
	}
}

// DrawGrid batches cols x rows cell edges starting at (x, y).
func (r *Renderer) DrawGrid(x, y float32, cols, rows int, cellSize float32, clr color.Color) {
	width := float32(cols) * cellSize
	height := float32(rows) * cellSize

	for i := 0; i <= cols; i++ {
		gx := x + float32(i)*cellSize
		r.DrawLine(gx, y, gx, y+height, clr)
	}
	for j := 0; j <= rows; j++ {
		gy := y + float32(j)*cellSize
		r.DrawLine(x, gy, x+width, gy, clr)
	}
}
