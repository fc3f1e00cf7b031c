package config

import (
	"flag"
	"testing"
	"time"

	"orca-core/internal/debug"
)

func TestResolveParsesLevelAndComponents(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := Register(fs)
	if err := fs.Parse([]string{"-log-level=debug", "-log-components=tick,midi"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.LogLevel != debug.LogLevelDebug {
		t.Errorf("LogLevel = %v, want Debug", cfg.LogLevel)
	}
	want := []debug.Component{debug.ComponentTick, debug.ComponentMIDI}
	if len(cfg.Components) != len(want) {
		t.Fatalf("Components = %v, want %v", cfg.Components, want)
	}
	for i, c := range want {
		if cfg.Components[i] != c {
			t.Errorf("Components[%d] = %v, want %v", i, cfg.Components[i], c)
		}
	}
}

func TestResolveRejectsUnknownLevel(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := Register(fs)
	fs.Parse([]string{"-log-level=loud"})
	if err := cfg.Resolve(); err == nil {
		t.Errorf("expected an error for an unknown log level")
	}
}

func TestResolveDefaultsToNoComponents(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := Register(fs)
	fs.Parse(nil)
	if err := cfg.Resolve(); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(cfg.Components) != 0 {
		t.Errorf("Components = %v, want none", cfg.Components)
	}
}

func TestTickIntervalFromRate(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := Register(fs)
	fs.Parse([]string{"-rate=2"})
	d, err := cfg.TickInterval()
	if err != nil {
		t.Fatalf("TickInterval: %v", err)
	}
	if d != 500*time.Millisecond {
		t.Errorf("TickInterval = %v, want 500ms", d)
	}
}

func TestTickIntervalRejectsNonPositiveRate(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := Register(fs)
	fs.Parse([]string{"-rate=0"})
	if _, err := cfg.TickInterval(); err == nil {
		t.Errorf("expected an error for a zero rate")
	}
}
