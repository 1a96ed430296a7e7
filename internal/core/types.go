package core

import "time"

// Vehicle defines the minimal contract a drivable simulation must implement.
// The shell feeds inputs, steps the model once per frame, and reads
// Telemetry back for display.
type Vehicle interface {
	Name() string
	SetThrottle(v float64)
	ShiftUp()
	ShiftDown()
	Step(dt time.Duration) error
	Telemetry() Telemetry
	MaxRPM() int
	Gears() int
}

// Factory constructs a Vehicle using an optional configuration map.
type Factory func(cfg map[string]string) (Vehicle, error)

var vehicles = map[string]Factory{}

// Register adds a vehicle factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	vehicles[name] = f
}

// Vehicles exposes the registry of available vehicle factories.
func Vehicles() map[string]Factory {
	return vehicles
}
