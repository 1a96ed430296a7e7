package core

import "strconv"

// Telemetry is the per-tick output snapshot of a vehicle simulation.
type Telemetry struct {
	RPM        int
	Horsepower float64
	TorqueNM   float64
	Gear       int
	SpeedKPH   float64
	Throttle   float64
}

// Readout is a single labeled value ready for display on the dashboard.
type Readout struct {
	Label string
	Value string
}

// Readouts formats the snapshot into display lines. The dashboard renders
// these verbatim, one per row.
func (t Telemetry) Readouts() []Readout {
	return []Readout{
		{Label: "HP", Value: strconv.FormatFloat(t.Horsepower, 'f', 2, 64)},
		{Label: "Torque", Value: strconv.FormatFloat(t.TorqueNM, 'f', 2, 64) + " Nm"},
		{Label: "Speed", Value: strconv.FormatFloat(t.SpeedKPH, 'f', 2, 64) + " km/h"},
		{Label: "Gear", Value: strconv.Itoa(t.Gear)},
		{Label: "Throttle", Value: strconv.FormatFloat(t.Throttle, 'f', 2, 64)},
	}
}
