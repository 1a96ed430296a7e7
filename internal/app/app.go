//go:build ebiten

package app

import (
	"enginesim/internal/core"
	"enginesim/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game adapts a core vehicle simulation to the ebiten.Game interface. Each
// frame it applies pending inputs, advances the model by one tick, and
// draws the dashboard from the fresh telemetry.
type Game struct {
	vehicle core.Vehicle
	dash    *ui.Dashboard
	clock   *core.DeltaClock
	log     zerolog.Logger
}

// New constructs a Game for the provided vehicle.
func New(vehicle core.Vehicle, logger zerolog.Logger) *Game {
	return &Game{
		vehicle: vehicle,
		dash:    ui.NewDashboard(ScreenWidth, ScreenHeight),
		clock:   core.NewDeltaClock(0),
		log:     logger,
	}
}

// Reset returns the vehicle to first gear with a closed throttle.
func (g *Game) Reset() {
	g.dash.SetThrottle(0)
	g.vehicle.SetThrottle(0)
	for g.vehicle.Telemetry().Gear > 1 {
		g.vehicle.ShiftDown()
	}
}

// Update handles per-frame input and advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		g.vehicle.ShiftUp()
		g.log.Debug().Int("gear", g.vehicle.Telemetry().Gear).Msg("shift up")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		g.vehicle.ShiftDown()
		g.log.Debug().Int("gear", g.vehicle.Telemetry().Gear).Msg("shift down")
	}

	g.dash.Update()
	// Reapplied every frame so the slider position wins back the throttle
	// once a shift's clutch dwell has cleared.
	g.vehicle.SetThrottle(g.dash.Throttle())

	return g.vehicle.Step(g.clock.Delta())
}

// Draw renders the dashboard for the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.dash.Draw(screen, g.vehicle.Telemetry(), g.vehicle.MaxRPM())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}
