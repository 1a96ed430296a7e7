package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the runtime options loaded from the optional JSON config
// file, layered under any command-line flags.
type Settings struct {
	Vehicle  string
	TPS      int
	LogLevel string

	// Overrides are forwarded to the vehicle factory as flag-style
	// key/value pairs (max_rpm, gear_ratios, tire_size, ...).
	Overrides map[string]string
}

// Load reads enginesim.cfg.json from configDir and returns the merged
// settings. A missing file yields the defaults; a malformed file is an
// error.
func Load(configDir string) (Settings, error) {
	viper.SetDefault("vehicle", "yaris")
	viper.SetDefault("tps", 60)
	viper.SetDefault("logLevel", "info")

	viper.SetConfigName("enginesim.cfg.json")
	viper.AddConfigPath(configDir)
	viper.SetConfigType("json")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return Settings{
		Vehicle:   viper.GetString("vehicle"),
		TPS:       viper.GetInt("tps"),
		LogLevel:  viper.GetString("logLevel"),
		Overrides: viper.GetStringMapString("vehicleOverrides"),
	}, nil
}
