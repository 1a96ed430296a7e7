//go:build ebiten

package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter draws filled primitives by scaling and rotating a shared 1x1
// white pixel image.
type Painter struct {
	pixel *ebiten.Image
}

// NewPainter constructs a Painter.
func NewPainter() *Painter {
	p := &Painter{pixel: ebiten.NewImage(1, 1)}
	p.pixel.Fill(color.White)
	return p
}

// FillRect fills an axis-aligned rectangle.
func (p *Painter) FillRect(dst *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	p.colorize(op, col)
	dst.DrawImage(p.pixel, op)
}

// Line draws a line segment of the given thickness between two points.
func (p *Painter) Line(dst *ebiten.Image, x1, y1, x2, y2, thickness float64, col color.RGBA) {
	dx := x2 - x1
	dy := y2 - y1
	length := math.Hypot(dx, dy)
	if length <= 1e-4 || thickness <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(length, thickness)
	op.GeoM.Translate(0, -thickness/2)
	op.GeoM.Rotate(math.Atan2(dy, dx))
	op.GeoM.Translate(x1, y1)
	p.colorize(op, col)
	dst.DrawImage(p.pixel, op)
}

// Disc fills a circle by stacking horizontal spans.
func (p *Painter) Disc(dst *ebiten.Image, cx, cy, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	for dy := -radius; dy <= radius; dy++ {
		span := math.Sqrt(radius*radius - dy*dy)
		p.FillRect(dst, cx-span, cy+dy, span*2, 1, col)
	}
}

// Circle strokes a circle outline with the given thickness.
func (p *Painter) Circle(dst *ebiten.Image, cx, cy, radius, thickness float64, col color.RGBA) {
	p.Arc(dst, cx, cy, radius, 0, 2*math.Pi, thickness, col)
}

// Arc strokes a circular arc from startAngle to endAngle (radians, screen
// convention: y grows downward) as short chained segments.
func (p *Painter) Arc(dst *ebiten.Image, cx, cy, radius, startAngle, endAngle, thickness float64, col color.RGBA) {
	if radius <= 0 || endAngle <= startAngle {
		return
	}
	// Segment count scales with arc length so large gauges stay smooth.
	segments := int(math.Ceil((endAngle - startAngle) * radius / 4))
	if segments < 8 {
		segments = 8
	}
	step := (endAngle - startAngle) / float64(segments)
	px := cx + radius*math.Cos(startAngle)
	py := cy + radius*math.Sin(startAngle)
	for i := 1; i <= segments; i++ {
		a := startAngle + float64(i)*step
		nx := cx + radius*math.Cos(a)
		ny := cy + radius*math.Sin(a)
		p.Line(dst, px, py, nx, ny, thickness, col)
		px, py = nx, ny
	}
}

func (p *Painter) colorize(op *ebiten.DrawImageOptions, col color.RGBA) {
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
}
