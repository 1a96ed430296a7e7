package drivetrain

import (
	"fmt"
	"math"
	"time"
)

// IdleRPM is the floor the crankshaft never drops below while running.
const IdleRPM = 700

// Unit constants for the power derivation.
const (
	nmToFtLb   = 0.737562
	hpConstant = 5252
)

const baseIncreaseRate = 0.03

// EngineSpec is the static description of one engine. It never changes
// after construction.
type EngineSpec struct {
	Name         string
	Manufacturer string
	Description  string

	Cylinders        int
	DisplacementCC   int
	CylinderBoreMM   float64
	PistonStrokeMM   float64
	CompressionRatio float64
	MaxRPM           int
	MaxHorsepower    int
	MaxKW            int
	MaxTorqueNM      int
	RON              int
	ECS              string
	PeakTorqueRPM    int
	PeakHPRPM        int
	ClutchResponse   time.Duration
}

// Validate checks the construction invariants the simulation divides by.
func (s EngineSpec) Validate() error {
	if s.MaxRPM <= 0 {
		return fmt.Errorf("%w: max rpm %d must be positive", ErrInvalidEngineSpec, s.MaxRPM)
	}
	if s.PeakTorqueRPM <= 0 || s.PeakTorqueRPM > s.MaxRPM {
		return fmt.Errorf("%w: peak torque rpm %d outside (0, %d]", ErrInvalidEngineSpec, s.PeakTorqueRPM, s.MaxRPM)
	}
	if s.MaxTorqueNM <= 0 {
		return fmt.Errorf("%w: max torque %d must be positive", ErrInvalidEngineSpec, s.MaxTorqueNM)
	}
	if s.MaxHorsepower <= 0 {
		return fmt.Errorf("%w: max horsepower %d must be positive", ErrInvalidEngineSpec, s.MaxHorsepower)
	}
	if s.ClutchResponse < 0 {
		return fmt.Errorf("%w: clutch response %v must not be negative", ErrInvalidEngineSpec, s.ClutchResponse)
	}
	return nil
}

// Engine holds one engine's live simulation state on top of its spec.
type Engine struct {
	spec EngineSpec

	rpm      float64
	torqueNM float64
	hp       float64
	throttle float64

	increaseRate float64
	gearRatio    float64
	ratioSet     bool

	clutched   bool
	clutchHeld time.Duration
}

// NewEngine validates the spec and returns an engine idling at 700 RPM with
// no gear ratio pushed yet.
func NewEngine(spec EngineSpec) (*Engine, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &Engine{spec: spec, rpm: IdleRPM}, nil
}

// Spec returns the static engine specification.
func (e *Engine) Spec() EngineSpec { return e.spec }

// RPM returns the current crankshaft speed.
func (e *Engine) RPM() int { return int(e.rpm) }

// TorqueNM returns the torque computed on the last tick.
func (e *Engine) TorqueNM() float64 { return e.torqueNM }

// Horsepower returns the power computed on the last tick.
func (e *Engine) Horsepower() float64 { return e.hp }

// Throttle returns the current throttle position.
func (e *Engine) Throttle() float64 { return e.throttle }

// Clutched reports whether the clutch is currently disengaging the engine.
func (e *Engine) Clutched() bool { return e.clutched }

// SetThrottle stores the driver input, clamped into [0, 1].
func (e *Engine) SetThrottle(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	e.throttle = v
}

// SetGearRatio stores the ratio currently selected by the gearbox and
// derives the RPM increase rate from it. Lower gears carry larger ratios
// and produce a faster perceived rev rise. Must be called before the first
// Step and again after every gear change.
func (e *Engine) SetGearRatio(ratio float64) {
	e.gearRatio = ratio
	e.ratioSet = true
	e.increaseRate = baseIncreaseRate * ratio / 2
}

// EngageClutch decouples the engine for one clutch-response dwell. While
// engaged the throttle is forced shut and RPM bleeds off ten times faster.
func (e *Engine) EngageClutch() {
	e.clutched = true
	e.clutchHeld = 0
}

// Step advances the engine by one tick. dt is the wall-clock time elapsed
// since the previous tick and only feeds the clutch dwell timer; the RPM
// integration itself is per-tick. Torque and horsepower are recomputed from
// the new RPM, torque first because the power derivation reads it.
func (e *Engine) Step(dt time.Duration) error {
	if !e.ratioSet {
		return ErrGearRatioUnset
	}

	if e.clutched {
		e.throttle = 0
		if e.clutchHeld > e.spec.ClutchResponse {
			e.clutched = false
			e.clutchHeld = 0
		} else {
			e.clutchHeld += dt
		}
	}

	maxRPM := float64(e.spec.MaxRPM)
	target := math.Floor(maxRPM * e.throttle * e.gearRatio)

	if target > e.rpm {
		// Asymptotically slower approach near redline.
		decay := 1 - (e.rpm/maxRPM)*(e.rpm/maxRPM)
		e.rpm += (target - e.rpm) * e.increaseRate * decay
		if e.rpm > target {
			e.rpm = target
		}
	} else if e.rpm > IdleRPM {
		k := 0.1
		if e.clutched {
			k = 1.0
		}
		e.rpm -= (e.rpm - target) * e.increaseRate * k
		if e.rpm < IdleRPM {
			e.rpm = IdleRPM
		}
	}

	if e.rpm > maxRPM {
		e.rpm = maxRPM
	}

	e.calculateTorque()
	e.calculateHorsepower()
	return nil
}

// calculateTorque evaluates the torque curve at the current RPM: a linear
// ramp up to the peak-torque RPM, then a quadratic falloff, floored at 30%
// of max torque. A stopped engine produces nothing and leaves stored state
// alone.
func (e *Engine) calculateTorque() float64 {
	if e.rpm == 0 {
		return 0
	}

	maxTorque := float64(e.spec.MaxTorqueNM)
	peak := float64(e.spec.PeakTorqueRPM)
	if e.rpm <= peak {
		e.torqueNM = maxTorque * (e.rpm / peak)
	} else {
		postPeak := (e.rpm - peak) / (float64(e.spec.MaxRPM) - peak)
		e.torqueNM = maxTorque * (1 - postPeak*postPeak)
	}

	if floor := maxTorque * 0.3; e.torqueNM < floor {
		e.torqueNM = floor
	}
	return e.torqueNM
}

// calculateHorsepower derives power from the stored torque via the
// torque-RPM identity at ft-lb scale, clamped at the rated maximum.
func (e *Engine) calculateHorsepower() float64 {
	if e.rpm == 0 {
		return 0
	}

	e.hp = (e.torqueNM * nmToFtLb * e.rpm) / hpConstant
	if limit := float64(e.spec.MaxHorsepower); e.hp > limit {
		e.hp = limit
	}
	return e.hp
}
