package drivetrain

import (
	"strconv"
	"strings"
	"time"
)

// FromMap applies string overrides (flag-style key/value pairs) on top of a
// preset. Unknown keys and unparsable values are ignored; validation of the
// resulting numbers happens at vehicle construction.
func FromMap(p Preset, cfg map[string]string) Preset {
	if cfg == nil {
		return p
	}
	if v, ok := cfg["max_rpm"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Engine.MaxRPM = parsed
		}
	}
	if v, ok := cfg["max_horsepower"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Engine.MaxHorsepower = parsed
		}
	}
	if v, ok := cfg["max_torque_nm"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Engine.MaxTorqueNM = parsed
		}
	}
	if v, ok := cfg["peak_torque_rpm"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			p.Engine.PeakTorqueRPM = parsed
		}
	}
	if v, ok := cfg["clutch_response_ms"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			p.Engine.ClutchResponse = time.Duration(parsed) * time.Millisecond
		}
	}
	if v, ok := cfg["gear_ratios"]; ok {
		if ratios := parseRatioList(v); len(ratios) > 0 {
			p.GearRatios = ratios
		}
	}
	if v, ok := cfg["final_drive"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			p.FinalDrive = parsed
		}
	}
	if v, ok := cfg["tire_size"]; ok && v != "" {
		p.TireSize = v
	}
	return p
}

func parseRatioList(s string) []float64 {
	parts := strings.Split(s, ",")
	ratios := make([]float64, 0, len(parts))
	for _, part := range parts {
		parsed, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil
		}
		ratios = append(ratios, parsed)
	}
	return ratios
}
