package app

import (
	"flag"
	"strings"

	"hexflake/internal/core"
	"hexflake/internal/sims/snowflake"
)

// Config represents the command-line parameters for the GUI host.
type Config struct {
	Rule       string
	Window     int
	Panel      int
	TPS        int
	Iterations int
	Preset     int
	Paused     bool
}

// NewConfig returns a Config populated with sensible defaults. Preset -1
// keeps the default coefficients.
func NewConfig() *Config {
	return &Config{Rule: snowflake.Name, Window: 800, Panel: 280, TPS: 60, Iterations: 1, Preset: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "update rule ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Window, "window", c.Window, "side length of the simulation view in pixels")
	fs.IntVar(&c.Panel, "panel", c.Panel, "width of the parameter panel in pixels (0 hides it)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame ticks per second")
	fs.IntVar(&c.Iterations, "ipf", c.Iterations, "generations per frame tick")
	fs.IntVar(&c.Preset, "preset", c.Preset, "preset index to start from (-1 for defaults)")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
}
