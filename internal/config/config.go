// Package config parses the flags common to every orcacore subcommand:
// which grid file to load, how fast to tick, which MIDI port to write to,
// the random seed, and which log components to turn on.
package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"orca-core/internal/debug"
)

// Config is the parsed result of a subcommand's flag set.
type Config struct {
	GridPath   string
	TickRateHz float64
	MIDIPort   string
	Seed       int
	LogLevel   debug.LogLevel
	Components []debug.Component

	logLevelRaw      string
	logComponentsRaw string
}

// componentsByName maps the -log-components flag's comma-separated names
// onto debug.Component values.
var componentsByName = map[string]debug.Component{
	"tick":     debug.ComponentTick,
	"operator": debug.ComponentOperator,
	"midi":     debug.ComponentMIDI,
	"state":    debug.ComponentState,
	"view":     debug.ComponentView,
	"system":   debug.ComponentSystem,
}

var levelsByName = map[string]debug.LogLevel{
	"none":    debug.LogLevelNone,
	"error":   debug.LogLevelError,
	"warning": debug.LogLevelWarning,
	"info":    debug.LogLevelInfo,
	"debug":   debug.LogLevelDebug,
	"trace":   debug.LogLevelTrace,
}

// Register binds the shared flags onto fs and returns a Config whose
// fields are populated once fs.Parse has run. Call Resolve afterward to
// turn the raw -log-level/-log-components strings into their typed form.
func Register(fs *flag.FlagSet) *Config {
	cfg := &Config{}
	fs.StringVar(&cfg.GridPath, "grid", "", "Path to a grid file")
	fs.Float64Var(&cfg.TickRateHz, "rate", 4.0, "Ticks per second")
	fs.StringVar(&cfg.MIDIPort, "port", "", "MIDI output port name (empty opens the first available port)")
	fs.IntVar(&cfg.Seed, "seed", 0, "Random seed for deterministic operators (R, arpeggiator random pattern)")
	fs.StringVar(&cfg.logLevelRaw, "log-level", "none", "Minimum log level: none|error|warning|info|debug|trace")
	fs.StringVar(&cfg.logComponentsRaw, "log-components", "", "Comma-separated components to log: tick,operator,midi,state,view,system (empty disables all)")
	return cfg
}

// RegisterPflag is Register's counterpart for cobra commands, which bind
// their flags on a pflag.FlagSet rather than the standard library's.
func RegisterPflag(fs *pflag.FlagSet) *Config {
	cfg := &Config{}
	fs.StringVar(&cfg.GridPath, "grid", "", "Path to a grid file")
	fs.Float64Var(&cfg.TickRateHz, "rate", 4.0, "Ticks per second")
	fs.StringVar(&cfg.MIDIPort, "port", "", "MIDI output port name (empty opens the first available port)")
	fs.IntVar(&cfg.Seed, "seed", 0, "Random seed for deterministic operators (R, arpeggiator random pattern)")
	fs.StringVar(&cfg.logLevelRaw, "log-level", "none", "Minimum log level: none|error|warning|info|debug|trace")
	fs.StringVar(&cfg.logComponentsRaw, "log-components", "", "Comma-separated components to log: tick,operator,midi,state,view,system (empty disables all)")
	return cfg
}

// Resolve finalizes LogLevel and Components from the raw flag strings.
// Call it once, right after fs.Parse.
func (c *Config) Resolve() error {
	level, ok := levelsByName[strings.ToLower(c.logLevelRaw)]
	if !ok {
		return fmt.Errorf("config: unknown -log-level %q", c.logLevelRaw)
	}
	c.LogLevel = level

	if c.logComponentsRaw == "" {
		return nil
	}
	for _, name := range strings.Split(c.logComponentsRaw, ",") {
		comp, ok := componentsByName[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return fmt.Errorf("config: unknown log component %q", name)
		}
		c.Components = append(c.Components, comp)
	}
	return nil
}

// TickInterval returns the duration between ticks implied by TickRateHz.
func (c *Config) TickInterval() (time.Duration, error) {
	if c.TickRateHz <= 0 {
		return 0, fmt.Errorf("config: -rate must be positive, got %v", c.TickRateHz)
	}
	return time.Duration(float64(time.Second) / c.TickRateHz), nil
}

// NewLogger builds a debug.Logger from the resolved level/components.
func (c *Config) NewLogger() *debug.Logger {
	logger := debug.NewLogger(10000)
	logger.SetMinLevel(c.LogLevel)
	for _, comp := range c.Components {
		logger.SetComponentEnabled(comp, true)
	}
	return logger
}
