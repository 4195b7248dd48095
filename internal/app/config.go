package app

import (
	"flag"

	"perlin-toy/internal/core"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Width       int
	Height      int
	Scale       int
	Octaves     int
	Persistence float64
	Salt        int
	PanSpeed    float64
	TPS         int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:       800,
		Height:      600,
		Scale:       10,
		Octaves:     2,
		Persistence: 0.5,
		Salt:        1,
		PanSpeed:    500,
		TPS:         60,
	}
}

// Viewport returns the configured window dimensions.
func (c *Config) Viewport() core.Size {
	return core.Size{W: c.Width, H: c.Height}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "horizontal viewport size")
	fs.IntVar(&c.Height, "height", c.Height, "vertical viewport size")
	fs.IntVar(&c.Scale, "scale", c.Scale, "horizontal noise scale")
	fs.IntVar(&c.Octaves, "octaves", c.Octaves, "number of octaves to sum")
	fs.Float64Var(&c.Persistence, "persistence", c.Persistence, "per-octave amplitude decay")
	fs.IntVar(&c.Salt, "salt", c.Salt, "gradient hash salt, must be nonzero")
	fs.Float64Var(&c.PanSpeed, "pan", c.PanSpeed, "horizontal pan speed in units per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
}
