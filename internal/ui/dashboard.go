//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"math"

	"enginesim/internal/core"
	"enginesim/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	sliderX = 50
	sliderY = 500
	sliderW = 300
	sliderH = 20

	gaugeRadius = 150

	readoutX     = 50
	readoutTop   = 100
	readoutPitch = 50

	redlineFraction = 0.85
)

var (
	colBackground = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	colText       = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colTrack      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	colFill       = color.RGBA{R: 0, G: 150, B: 0, A: 255}
	colKnob       = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	colGaugeFace  = color.RGBA{R: 10, G: 10, B: 10, A: 255}
	colGaugeRim   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colRedline    = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colNeedle     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colGaugeText  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Dashboard renders the throttle slider, the RPM gauge, and the telemetry
// readouts, and owns the pointer interaction with the slider.
type Dashboard struct {
	painter *render.Painter

	width  int
	height int

	throttle float64
}

// NewDashboard constructs a dashboard for the given logical screen size.
func NewDashboard(width, height int) *Dashboard {
	return &Dashboard{painter: render.NewPainter(), width: width, height: height}
}

// Throttle returns the current slider position in [0, 1].
func (d *Dashboard) Throttle() float64 { return d.throttle }

// SetThrottle moves the slider programmatically (used on reset).
func (d *Dashboard) SetThrottle(v float64) {
	d.throttle = clamp01(v)
}

// Update polls the pointer. Clicking or dragging inside the slider track
// moves the knob; it reports whether the throttle changed this frame.
func (d *Dashboard) Update() bool {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if my < sliderY || my > sliderY+sliderH || mx < sliderX || mx > sliderX+sliderW {
		return false
	}
	v := clamp01(float64(mx-sliderX) / sliderW)
	if v == d.throttle {
		return false
	}
	d.throttle = v
	return true
}

// Draw paints the full dashboard for the given telemetry snapshot.
func (d *Dashboard) Draw(screen *ebiten.Image, tel core.Telemetry, maxRPM int) {
	screen.Fill(colBackground)
	d.drawSlider(screen)
	d.drawGauge(screen, tel.RPM, maxRPM)
	d.drawReadouts(screen, tel)
}

func (d *Dashboard) drawSlider(screen *ebiten.Image) {
	d.painter.FillRect(screen, sliderX, sliderY, sliderW, sliderH, colTrack)
	fillW := d.throttle * sliderW
	d.painter.FillRect(screen, sliderX, sliderY, fillW, sliderH, colFill)
	d.painter.Disc(screen, sliderX+fillW, sliderY+sliderH/2, sliderH/2, colKnob)
}

// drawGauge paints a half-sweep RPM gauge: needle at 180 degrees when
// stopped, 0 degrees at redline, red arc over the top 15% of the range.
func (d *Dashboard) drawGauge(screen *ebiten.Image, rpm, maxRPM int) {
	cx := float64(d.width) / 2
	cy := float64(d.height) / 2
	r := float64(gaugeRadius)

	d.painter.Disc(screen, cx, cy, r, colGaugeFace)
	d.painter.Circle(screen, cx, cy, r, 2, colGaugeRim)

	// Redline arc. Needle angle convention: theta = pi*(1 - rpm/max),
	// mapped to screen coordinates with y growing downward.
	redStart := math.Pi * (1 - redlineFraction)
	d.painter.Arc(screen, cx, cy, r-6, math.Pi+(math.Pi-redStart), 2*math.Pi, 6, colRedline)

	face := basicfont.Face7x13
	ticks := 6
	for i := 0; i <= ticks; i++ {
		frac := float64(i) / float64(ticks)
		theta := math.Pi * (1 - frac)
		outerX := cx + (r-4)*math.Cos(theta)
		outerY := cy - (r-4)*math.Sin(theta)
		innerX := cx + (r-16)*math.Cos(theta)
		innerY := cy - (r-16)*math.Sin(theta)
		d.painter.Line(screen, outerX, outerY, innerX, innerY, 2, colGaugeRim)

		label := fmt.Sprintf("%d", int(float64(maxRPM)*frac))
		labelX := cx + (r-36)*math.Cos(theta)
		labelY := cy - (r-36)*math.Sin(theta)
		bounds := text.BoundString(face, label)
		text.Draw(screen, label, face, int(labelX)-bounds.Dx()/2, int(labelY)+bounds.Dy()/2, colGaugeText)
	}

	frac := clamp01(float64(rpm) / float64(maxRPM))
	theta := math.Pi * (1 - frac)
	needleX := cx + (r-20)*math.Cos(theta)
	needleY := cy - (r-20)*math.Sin(theta)
	d.painter.Line(screen, cx, cy, needleX, needleY, 4, colNeedle)

	rpmText := fmt.Sprintf("%d RPM", rpm)
	bounds := text.BoundString(face, rpmText)
	text.Draw(screen, rpmText, face, int(cx)-bounds.Dx()/2, int(cy+r/2)-10, colGaugeText)
}

func (d *Dashboard) drawReadouts(screen *ebiten.Image, tel core.Telemetry) {
	face := basicfont.Face7x13
	for i, readout := range tel.Readouts() {
		y := readoutTop + i*readoutPitch
		text.Draw(screen, readout.Label+": "+readout.Value, face, readoutX, y, colText)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
