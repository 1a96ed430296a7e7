package drivetrain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Gearbox models the transmission and the driven wheels: an ordered set of
// gear ratios, a final drive ratio, and a tire radius derived once from the
// tire descriptor.
type Gearbox struct {
	ratios      []float64
	finalDrive  float64
	tireRadiusM float64
	currentGear int
}

// NewGearbox validates the gear set and tire descriptor and returns a
// gearbox in first gear. A malformed tire descriptor aborts construction;
// no default radius is substituted.
func NewGearbox(ratios []float64, finalDrive float64, tireSize string) (*Gearbox, error) {
	if len(ratios) == 0 {
		return nil, fmt.Errorf("%w: gear ratio list must not be empty", ErrInvalidGearboxSpec)
	}
	for i, r := range ratios {
		if r <= 0 {
			return nil, fmt.Errorf("%w: gear %d ratio %v must be positive", ErrInvalidGearboxSpec, i+1, r)
		}
	}
	if finalDrive <= 0 {
		return nil, fmt.Errorf("%w: final drive ratio %v must be positive", ErrInvalidGearboxSpec, finalDrive)
	}
	radius, err := ParseTireRadius(tireSize)
	if err != nil {
		return nil, err
	}
	return &Gearbox{
		ratios:      append([]float64(nil), ratios...),
		finalDrive:  finalDrive,
		tireRadiusM: radius,
		currentGear: 1,
	}, nil
}

// ParseTireRadius converts a "Width/AspectRatioRDiameter" descriptor such
// as "195/55R16" into a wheel radius in meters. The radius is taken from
// the rim diameter alone; the sidewall height implied by width and aspect
// ratio does not enter the formula.
func ParseTireRadius(tireSize string) (float64, error) {
	width, rest, ok := strings.Cut(tireSize, "/")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTireSize, tireSize)
	}
	aspect, diameter, ok := strings.Cut(rest, "R")
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTireSize, tireSize)
	}
	if _, err := strconv.Atoi(width); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTireSize, tireSize)
	}
	if _, err := strconv.Atoi(aspect); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTireSize, tireSize)
	}
	d, err := strconv.Atoi(diameter)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTireSize, tireSize)
	}
	return float64(d) * 25.4 / 2 / 1000, nil
}

// ShiftUp selects the next higher gear. It reports whether the gear
// changed; at the top gear it is a no-op.
func (g *Gearbox) ShiftUp() bool {
	if g.currentGear >= len(g.ratios) {
		return false
	}
	g.currentGear++
	return true
}

// ShiftDown selects the next lower gear. It reports whether the gear
// changed; at first gear it is a no-op.
func (g *Gearbox) ShiftDown() bool {
	if g.currentGear <= 1 {
		return false
	}
	g.currentGear--
	return true
}

// Gear returns the 1-based current gear number.
func (g *Gearbox) Gear() int { return g.currentGear }

// Gears returns the number of forward gears.
func (g *Gearbox) Gears() int { return len(g.ratios) }

// CurrentRatio returns the ratio of the selected gear.
func (g *Gearbox) CurrentRatio() float64 { return g.ratios[g.currentGear-1] }

// TireRadiusM returns the wheel radius in meters.
func (g *Gearbox) TireRadiusM() float64 { return g.tireRadiusM }

// Speed converts an engine RPM into road speed in km/h through the current
// gear, the final drive, and the tire circumference. Pure; no state changes.
func (g *Gearbox) Speed(engineRPM int) float64 {
	return (float64(engineRPM) * g.tireRadiusM * 2 * math.Pi * 60) /
		(g.finalDrive * g.CurrentRatio() * 1000)
}
