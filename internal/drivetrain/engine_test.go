package drivetrain

import (
	"errors"
	"math"
	"testing"
	"time"
)

const tickDT = 16 * time.Millisecond

func testSpec() EngineSpec {
	return YarisPreset().Engine
}

func TestEngineSpecValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*EngineSpec)
	}{
		{"zero max rpm", func(s *EngineSpec) { s.MaxRPM = 0 }},
		{"negative max rpm", func(s *EngineSpec) { s.MaxRPM = -100 }},
		{"zero peak torque rpm", func(s *EngineSpec) { s.PeakTorqueRPM = 0 }},
		{"peak torque above redline", func(s *EngineSpec) { s.PeakTorqueRPM = s.MaxRPM + 1 }},
		{"zero max torque", func(s *EngineSpec) { s.MaxTorqueNM = 0 }},
		{"zero max horsepower", func(s *EngineSpec) { s.MaxHorsepower = 0 }},
		{"negative clutch response", func(s *EngineSpec) { s.ClutchResponse = -time.Second }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec := testSpec()
			tc.mutate(&spec)
			if _, err := NewEngine(spec); !errors.Is(err, ErrInvalidEngineSpec) {
				t.Fatalf("NewEngine error = %v, want ErrInvalidEngineSpec", err)
			}
		})
	}
}

func TestStepWithoutGearRatio(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	if err := engine.Step(tickDT); !errors.Is(err, ErrGearRatioUnset) {
		t.Fatalf("Step error = %v, want ErrGearRatioUnset", err)
	}
	engine.SetGearRatio(1.0)
	if err := engine.Step(tickDT); err != nil {
		t.Fatalf("Step after ratio push: %v", err)
	}
}

func TestThrottleConvergence(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(1.0)
	engine.SetThrottle(0.5)

	target := 2750 // floor(5500 * 0.5 * 1.0)
	prev := engine.RPM()
	for i := 0; i < 5000; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
		rpm := engine.RPM()
		if rpm < prev {
			t.Fatalf("tick %d: rpm dropped from %d to %d while accelerating", i, prev, rpm)
		}
		if rpm > target {
			t.Fatalf("tick %d: rpm %d overshot target %d", i, rpm, target)
		}
		prev = rpm
	}
	if prev < target-1 {
		t.Fatalf("rpm %d did not converge to target %d", prev, target)
	}
}

func TestRedlineClamp(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	// First gear: target far above the redline, so the decay factor is the
	// only thing holding the needle back.
	engine.SetGearRatio(3.545)
	engine.SetThrottle(1.0)

	for i := 0; i < 500; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
		if engine.RPM() > engine.Spec().MaxRPM {
			t.Fatalf("tick %d: rpm %d above redline %d", i, engine.RPM(), engine.Spec().MaxRPM)
		}
	}
	if engine.RPM() < engine.Spec().MaxRPM-1 {
		t.Fatalf("rpm %d did not approach redline %d", engine.RPM(), engine.Spec().MaxRPM)
	}
}

func TestIdleFloor(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(1.0)
	engine.SetThrottle(1.0)
	for i := 0; i < 1000; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
	}

	engine.SetThrottle(0)
	for i := 0; i < 5000; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
		if engine.RPM() < IdleRPM {
			t.Fatalf("tick %d: rpm %d below idle floor %d", i, engine.RPM(), IdleRPM)
		}
	}
	if engine.RPM() != IdleRPM {
		t.Fatalf("rpm %d did not settle at idle %d", engine.RPM(), IdleRPM)
	}
}

func TestTorqueFloorAndHorsepowerCeiling(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(3.545)
	engine.SetThrottle(1.0)

	floor := float64(engine.Spec().MaxTorqueNM) * 0.3
	ceiling := float64(engine.Spec().MaxHorsepower)
	for i := 0; i < 1000; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
		if engine.TorqueNM() < floor {
			t.Fatalf("tick %d: torque %.2f below floor %.2f at rpm %d", i, engine.TorqueNM(), floor, engine.RPM())
		}
		if engine.Horsepower() > ceiling {
			t.Fatalf("tick %d: horsepower %.2f above ceiling %.2f", i, engine.Horsepower(), ceiling)
		}
	}
}

func TestTorqueCurveShape(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(3.545)
	engine.SetThrottle(1.0)

	spec := engine.Spec()
	peakSeen := 0.0
	for i := 0; i < 1000; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
		rpm := float64(engine.RPM())
		if engine.TorqueNM() > peakSeen {
			peakSeen = engine.TorqueNM()
		}

		var want float64
		if rpm <= float64(spec.PeakTorqueRPM) {
			want = float64(spec.MaxTorqueNM) * (rpm / float64(spec.PeakTorqueRPM))
		} else {
			post := (rpm - float64(spec.PeakTorqueRPM)) / float64(spec.MaxRPM-spec.PeakTorqueRPM)
			want = float64(spec.MaxTorqueNM) * (1 - post*post)
		}
		if floor := float64(spec.MaxTorqueNM) * 0.3; want < floor {
			want = floor
		}
		// The stored RPM carries a fractional part the int accessor drops.
		if math.Abs(engine.TorqueNM()-want) > 0.6 {
			t.Fatalf("tick %d: torque %.3f, want %.3f at rpm %d", i, engine.TorqueNM(), want, engine.RPM())
		}
	}
	if peakSeen < float64(spec.MaxTorqueNM)*0.95 {
		t.Fatalf("sweep through peak rpm only reached %.2f Nm of %d", peakSeen, spec.MaxTorqueNM)
	}
}

func TestStoppedEngineProducesNothing(t *testing.T) {
	engine := &Engine{spec: testSpec(), torqueNM: 50, hp: 40}
	if got := engine.calculateTorque(); got != 0 {
		t.Fatalf("torque at zero rpm = %v, want 0", got)
	}
	if got := engine.calculateHorsepower(); got != 0 {
		t.Fatalf("horsepower at zero rpm = %v, want 0", got)
	}
	if engine.torqueNM != 50 || engine.hp != 40 {
		t.Fatal("zero-rpm path must not update stored state")
	}
}

func TestClutchForcesThrottleShut(t *testing.T) {
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(1.0)
	engine.SetThrottle(0.8)
	for i := 0; i < 500; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
	}

	engine.EngageClutch()
	if err := engine.Step(tickDT); err != nil {
		t.Fatal(err)
	}
	if engine.Throttle() != 0 {
		t.Fatalf("throttle %v after clutch engage, want 0", engine.Throttle())
	}
}

func TestClutchDecaysTenTimesFaster(t *testing.T) {
	spinUp := func() *Engine {
		engine, err := NewEngine(testSpec())
		if err != nil {
			t.Fatal(err)
		}
		engine.SetGearRatio(1.0)
		engine.SetThrottle(0.8)
		for i := 0; i < 500; i++ {
			if err := engine.Step(tickDT); err != nil {
				t.Fatal(err)
			}
		}
		return engine
	}

	clutched := spinUp()
	coasting := spinUp()
	start := clutched.rpm

	clutched.EngageClutch()
	if err := clutched.Step(tickDT); err != nil {
		t.Fatal(err)
	}
	coasting.SetThrottle(0)
	if err := coasting.Step(tickDT); err != nil {
		t.Fatal(err)
	}

	clutchDrop := start - clutched.rpm
	coastDrop := start - coasting.rpm
	if coastDrop <= 0 || clutchDrop <= 0 {
		t.Fatalf("expected both engines to lose rpm, got %.3f and %.3f", clutchDrop, coastDrop)
	}
	ratio := clutchDrop / coastDrop
	if math.Abs(ratio-10) > 0.5 {
		t.Fatalf("clutched decay %.3f vs coasting %.3f: ratio %.2f, want 10", clutchDrop, coastDrop, ratio)
	}
}

func TestClutchAutoClearsAfterResponseTime(t *testing.T) {
	spec := testSpec()
	spec.ClutchResponse = 300 * time.Millisecond
	engine, err := NewEngine(spec)
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(1.0)
	engine.EngageClutch()

	dt := 100 * time.Millisecond
	elapsed := time.Duration(0)
	for i := 0; i < 20; i++ {
		if err := engine.Step(dt); err != nil {
			t.Fatal(err)
		}
		if elapsed <= spec.ClutchResponse && !engine.Clutched() {
			t.Fatalf("clutch cleared after only %v of dwell", elapsed)
		}
		elapsed += dt
		if elapsed > spec.ClutchResponse+2*dt && engine.Clutched() {
			t.Fatalf("clutch still engaged after %v of dwell", elapsed)
		}
	}
	if engine.Clutched() {
		t.Fatal("clutch never auto-cleared")
	}
}

func TestFullThrottleScenario(t *testing.T) {
	// Full throttle in first gear (ratio 3.545) on the 5500-redline
	// engine: the needle must rise from idle to the clamped redline with
	// torque peaking near 4800 rpm and never dipping under 30% of max.
	engine, err := NewEngine(testSpec())
	if err != nil {
		t.Fatal(err)
	}
	engine.SetGearRatio(3.545)
	engine.SetThrottle(1.0)

	prev := engine.RPM()
	sawPeak := false
	for i := 0; i < 1000; i++ {
		if err := engine.Step(tickDT); err != nil {
			t.Fatal(err)
		}
		if engine.RPM() < prev {
			t.Fatalf("tick %d: rpm fell from %d to %d under full throttle", i, prev, engine.RPM())
		}
		prev = engine.RPM()
		if engine.TorqueNM() < 36 {
			t.Fatalf("tick %d: torque %.2f under the 36 Nm floor", i, engine.TorqueNM())
		}
		if engine.TorqueNM() > 117 {
			sawPeak = true
		}
	}
	if prev < 5499 {
		t.Fatalf("rpm %d never approached the 5500 redline", prev)
	}
	if !sawPeak {
		t.Fatal("torque never approached its 120 Nm peak on the way up")
	}
}
