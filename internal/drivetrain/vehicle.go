package drivetrain

import (
	"time"

	"enginesim/internal/core"
)

// Vehicle couples one engine to one gearbox. The gearbox is the only source
// of the gear ratio the engine revs against, and the engine is the only
// source of the RPM the gearbox converts to road speed. Shifting is a
// single operation on Vehicle so the ratio push into the engine can never
// be forgotten.
type Vehicle struct {
	name    string
	engine  *Engine
	gearbox *Gearbox
}

// NewVehicle builds the engine and gearbox from a preset and pushes the
// first-gear ratio into the engine, so Step can never observe an unset
// ratio through this type.
func NewVehicle(p Preset) (*Vehicle, error) {
	engine, err := NewEngine(p.Engine)
	if err != nil {
		return nil, err
	}
	gearbox, err := NewGearbox(p.GearRatios, p.FinalDrive, p.TireSize)
	if err != nil {
		return nil, err
	}
	v := &Vehicle{name: p.Name, engine: engine, gearbox: gearbox}
	v.engine.SetGearRatio(v.gearbox.CurrentRatio())
	return v, nil
}

// Name returns the preset name.
func (v *Vehicle) Name() string { return v.name }

// Engine exposes the engine for direct inspection.
func (v *Vehicle) Engine() *Engine { return v.engine }

// Gearbox exposes the gearbox for direct inspection.
func (v *Vehicle) Gearbox() *Gearbox { return v.gearbox }

// SetThrottle forwards the driver input to the engine.
func (v *Vehicle) SetThrottle(t float64) { v.engine.SetThrottle(t) }

// ShiftUp moves to the next higher gear. On an actual change the clutch is
// engaged for the shift and the new ratio is pushed into the engine in the
// same call. A no-op at the top gear.
func (v *Vehicle) ShiftUp() {
	if v.gearbox.ShiftUp() {
		v.engine.EngageClutch()
		v.engine.SetGearRatio(v.gearbox.CurrentRatio())
	}
}

// ShiftDown moves to the next lower gear. Same coupling rules as ShiftUp;
// a no-op at first gear.
func (v *Vehicle) ShiftDown() {
	if v.gearbox.ShiftDown() {
		v.engine.EngageClutch()
		v.engine.SetGearRatio(v.gearbox.CurrentRatio())
	}
}

// Step advances the engine by one tick.
func (v *Vehicle) Step(dt time.Duration) error {
	return v.engine.Step(dt)
}

// MaxRPM returns the engine redline.
func (v *Vehicle) MaxRPM() int { return v.engine.Spec().MaxRPM }

// Gears returns the number of forward gears.
func (v *Vehicle) Gears() int { return v.gearbox.Gears() }

// Telemetry assembles the display snapshot for the current tick.
func (v *Vehicle) Telemetry() core.Telemetry {
	rpm := v.engine.RPM()
	return core.Telemetry{
		RPM:        rpm,
		Horsepower: v.engine.Horsepower(),
		TorqueNM:   v.engine.TorqueNM(),
		Gear:       v.gearbox.Gear(),
		SpeedKPH:   v.gearbox.Speed(rpm),
		Throttle:   v.engine.Throttle(),
	}
}
