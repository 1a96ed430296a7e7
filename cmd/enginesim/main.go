//go:build ebiten

package main

import (
	"errors"
	"flag"
	"os"

	"enginesim/internal/app"
	"enginesim/internal/config"
	"enginesim/internal/core"
	_ "enginesim/internal/drivetrain"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := config.Load(cfg.ConfigDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("loading config")
	}
	if level, err := zerolog.ParseLevel(settings.LogLevel); err == nil {
		logger = logger.Level(level)
	}

	// Explicit flags win over config file values.
	explicit := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	if !explicit["vehicle"] {
		cfg.Vehicle = settings.Vehicle
	}
	if !explicit["tps"] {
		cfg.TPS = settings.TPS
	}

	factory, ok := core.Vehicles()[cfg.Vehicle]
	if !ok {
		logger.Fatal().Str("vehicle", cfg.Vehicle).Msg("unknown vehicle preset")
	}
	vehicle, err := factory(settings.Overrides)
	if err != nil {
		logger.Fatal().Err(err).Str("vehicle", cfg.Vehicle).Msg("building vehicle")
	}

	logger.Info().
		Str("vehicle", vehicle.Name()).
		Int("max_rpm", vehicle.MaxRPM()).
		Int("gears", vehicle.Gears()).
		Msg("starting simulation")

	game := app.New(vehicle, logger)

	ebiten.SetWindowTitle("enginesim — " + vehicle.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(app.ScreenWidth, app.ScreenHeight)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal().Err(err).Msg("run")
	}
}
