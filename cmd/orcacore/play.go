package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell"
	"github.com/spf13/cobra"

	"orca-core/internal/config"
	"orca-core/internal/debug"
	"orca-core/internal/gridfile"
	"orca-core/internal/midi"
	"orca-core/internal/midiout"
	"orca-core/internal/tick"
	"orca-core/internal/view"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Run a grid live in the terminal, sending MIDI to an output port",
	}
	cfg := config.RegisterPflag(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cfg.Resolve(); err != nil {
			return err
		}
		if cfg.GridPath == "" {
			return fmt.Errorf("play: --grid is required")
		}
		interval, err := cfg.TickInterval()
		if err != nil {
			return err
		}

		g, err := gridfile.Load(cfg.GridPath)
		if err != nil {
			return err
		}

		sender, err := midiout.Open(cfg.MIDIPort)
		if err != nil {
			return err
		}
		defer sender.Close()

		v, err := view.New()
		if err != nil {
			return err
		}
		defer v.Close()

		logger := cfg.NewLogger()
		defer logger.Shutdown()

		events := make(chan tcell.Event, 16)
		go func() {
			for {
				events <- v.PollEvent()
			}
		}()

		ev := tick.NewEvaluator()
		ev.Logger = logger
		var buf midi.Buffer
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		tickNumber := 0
		for {
			select {
			case e := <-events:
				if key, ok := e.(*tcell.EventKey); ok {
					if key.Key() == tcell.KeyEscape || key.Rune() == 'q' {
						logger.LogSystemf(debug.LogLevelInfo, "play stopped by key %q at tick %d", key.Rune(), tickNumber)
						return nil
					}
				}
			case <-ticker.C:
				ev.Run(g, tickNumber, cfg.Seed, &buf)
				v.LogEvents(tickNumber, buf.Events())
				logger.LogMIDIf(tickNumber, debug.LogLevelInfo, "draining %d events to %q", buf.Len(), cfg.MIDIPort)
				if err := sender.Drain(&buf); err != nil {
					return err
				}
				v.Draw(g, tickNumber)
				logger.LogViewf(tickNumber, debug.LogLevelTrace, "redrew grid")
				tickNumber++
			}
		}
	}
	return cmd
}
