package main

import (
	"github.com/spf13/cobra"

	"orca-core/internal/config"
	"orca-core/internal/midi"
	"orca-core/internal/midiout"
)

func newPanicCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "panic",
		Short: "Send an all-notes-off burst on every channel and exit",
	}
	cfg := config.RegisterPflag(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		sender, err := midiout.Open(cfg.MIDIPort)
		if err != nil {
			return err
		}
		defer sender.Close()

		var buf midi.Buffer
		midi.Panic(&buf)
		return sender.Drain(&buf)
	}
	return cmd
}
