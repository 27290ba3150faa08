package display

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// fillRect paints the rectangle [x0,x1)x[y0,y1), clipped to the frame.
func fillRect(frame *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	r := image.Rect(x0, y0, x1, y1).Intersect(frame.Bounds())
	draw.Draw(frame, r, &image.Uniform{c}, image.Point{}, draw.Src)
}

// fillFrame fills the whole frame with one color.
func fillFrame(frame *image.RGBA, c color.RGBA) {
	fillRect(frame, 0, 0, Width, Height, c)
}

// drawText renders s with the fixed 7x13 face, y being the top of the
// text cell.
func drawText(frame *image.RGBA, x, y int, s string, c color.RGBA) {
	d := font.Drawer{
		Dst:  frame,
		Src:  &image.Uniform{c},
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y+basicfont.Face7x13.Ascent),
	}
	d.DrawString(s)
}

// drawLine draws a 2px line between two points (used by the logo gear).
func drawLine(frame *image.RGBA, x0, y0, x1, y1 int, c color.RGBA) {
	dx := float64(x1 - x0)
	dy := float64(y1 - y0)
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		fillRect(frame, x0, y0, x0+2, y0+2, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*dx)
		y := y0 + int(t*dy)
		fillRect(frame, x, y, x+2, y+2, c)
	}
}

// drawDisc fills a circle of the given radius around a center point.
func drawDisc(frame *image.RGBA, cx, cy, radius int, c color.RGBA) {
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= radius*radius {
				fillRect(frame, cx+x, cy+y, cx+x+1, cy+y+1, c)
			}
		}
	}
}
