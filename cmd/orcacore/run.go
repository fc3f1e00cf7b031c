package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"orca-core/internal/config"
	"orca-core/internal/debug"
	"orca-core/internal/gridfile"
	"orca-core/internal/midi"
	"orca-core/internal/tick"
)

func newRunCmd() *cobra.Command {
	var ticks int

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a grid headlessly for a fixed number of ticks, dumping MIDI events",
	}
	cfg := config.RegisterPflag(cmd.Flags())
	cmd.Flags().IntVar(&ticks, "ticks", 16, "Number of ticks to run")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if err := cfg.Resolve(); err != nil {
			return err
		}
		if cfg.GridPath == "" {
			return fmt.Errorf("run: --grid is required")
		}

		g, err := gridfile.Load(cfg.GridPath)
		if err != nil {
			return err
		}

		logger := cfg.NewLogger()
		defer logger.Shutdown()

		ev := tick.NewEvaluator()
		ev.Logger = logger
		var buf midi.Buffer
		for t := 0; t < ticks; t++ {
			ev.Run(g, t, cfg.Seed, &buf)
			for _, e := range buf.Events() {
				fmt.Println(formatEventLine(t, e))
			}
			logger.LogTickf(t, debug.LogLevelInfo, "emitted %d events", buf.Len())
			buf.Clear()
		}
		return nil
	}
	return cmd
}

func formatEventLine(t int, e midi.Event) string {
	switch ev := e.(type) {
	case midi.Note:
		kind := "note"
		if ev.Mono {
			kind = "mono"
		}
		return fmt.Sprintf("tick=%d %s channel=%d octave=%d note=%d velocity=%d duration=%d", t, kind, ev.Channel, ev.Octave, ev.Note, ev.Velocity, ev.Duration)
	case midi.CC:
		return fmt.Sprintf("tick=%d cc channel=%d control=%d value=%d", t, ev.Channel, ev.Control, ev.Value)
	case midi.PitchBend:
		return fmt.Sprintf("tick=%d pitchbend channel=%d msb=%d lsb=%d", t, ev.Channel, ev.MSB, ev.LSB)
	default:
		return fmt.Sprintf("tick=%d unknown", t)
	}
}
