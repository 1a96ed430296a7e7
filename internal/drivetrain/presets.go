package drivetrain

import (
	"fmt"
	"time"

	"enginesim/internal/core"
)

// Preset bundles everything needed to construct a vehicle.
type Preset struct {
	Name       string
	Engine     EngineSpec
	GearRatios []float64
	FinalDrive float64
	TireSize   string
}

// YarisPreset returns the Toyota M15A-FXE three-cylinder with its five-speed
// gearbox. This is the default vehicle.
func YarisPreset() Preset {
	return Preset{
		Name: "yaris",
		Engine: EngineSpec{
			Name:             "M15A-FXE",
			Manufacturer:     "Toyota",
			Description:      "3 Cylinder Engine",
			Cylinders:        3,
			DisplacementCC:   1490,
			CylinderBoreMM:   80.5,
			PistonStrokeMM:   97.6,
			CompressionRatio: 14.0,
			MaxRPM:           5500,
			MaxHorsepower:    91,
			MaxKW:            67,
			MaxTorqueNM:      120,
			RON:              91,
			ECS:              "EFI",
			PeakTorqueRPM:    4800,
			PeakHPRPM:        5500,
			ClutchResponse:   300 * time.Millisecond,
		},
		GearRatios: []float64{3.545, 1.913, 1.310, 1.027, 0.850},
		FinalDrive: 4.294,
		TireSize:   "195/55R16",
	}
}

// SkyActivPreset returns the Mazda 2.0L SkyActiv-G four-cylinder with its
// six-speed gearbox.
func SkyActivPreset() Preset {
	return Preset{
		Name: "skyactiv",
		Engine: EngineSpec{
			Name:             "2.0L SkyActiv-G",
			Manufacturer:     "Mazda",
			Cylinders:        4,
			DisplacementCC:   1998,
			CylinderBoreMM:   83.5,
			PistonStrokeMM:   91.2,
			CompressionRatio: 13.0,
			MaxRPM:           6000,
			MaxHorsepower:    155,
			MaxKW:            114,
			MaxTorqueNM:      200,
			RON:              95,
			ECS:              "Direct",
			PeakTorqueRPM:    4000,
			PeakHPRPM:        6000,
			ClutchResponse:   300 * time.Millisecond,
		},
		GearRatios: []float64{3.454, 2.043, 1.308, 1.000, 0.759, 0.634},
		FinalDrive: 3.636,
		TireSize:   "195/50R16",
	}
}

// Presets lists the built-in vehicle presets by name.
func Presets() map[string]Preset {
	return map[string]Preset{
		"yaris":    YarisPreset(),
		"skyactiv": SkyActivPreset(),
	}
}

func register(preset func() Preset) {
	p := preset()
	core.Register(p.Name, func(cfg map[string]string) (core.Vehicle, error) {
		v, err := NewVehicle(FromMap(p, cfg))
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		return v, nil
	})
}

func init() {
	register(YarisPreset)
	register(SkyActivPreset)
}
