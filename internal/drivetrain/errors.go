package drivetrain

import "errors"

var (
	// ErrInvalidEngineSpec reports an engine specification that fails
	// construction-time validation.
	ErrInvalidEngineSpec = errors.New("invalid engine spec")

	// ErrInvalidGearboxSpec reports a gearbox specification that fails
	// construction-time validation.
	ErrInvalidGearboxSpec = errors.New("invalid gearbox spec")

	// ErrInvalidTireSize reports a tire descriptor that does not match the
	// "Width/AspectRatioRDiameter" format.
	ErrInvalidTireSize = errors.New("invalid tire size format")

	// ErrGearRatioUnset reports a Step call before any gear ratio was
	// pushed into the engine.
	ErrGearRatioUnset = errors.New("gear ratio not set")
)
