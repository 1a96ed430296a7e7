package app

import "flag"

// Logical screen size of the dashboard window.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
)

// Config represents the command-line parameters for the application.
// Values set explicitly on the command line take precedence over the
// config file.
type Config struct {
	Vehicle   string
	TPS       int
	ConfigDir string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Vehicle: "yaris", TPS: 60, ConfigDir: "."}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Vehicle, "vehicle", c.Vehicle, "vehicle preset to drive")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.StringVar(&c.ConfigDir, "config-dir", c.ConfigDir, "directory containing enginesim.cfg.json")
}
