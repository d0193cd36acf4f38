package app

import "flag"

// Fixed deployment constants: the simulation field, its on-screen scale, and
// the ceiling for the wheel-adjusted step rate.
const (
	SimWidth  = 480
	SimHeight = 270

	RenderScale = 4

	MaxStepsPerSecond = 20
)

// Config represents the command-line parameters for the application.
type Config struct {
	Seed int64
	Fill bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the -fill starting soup")
	fs.BoolVar(&c.Fill, "fill", c.Fill, "start with a random soup instead of an empty field")
}
