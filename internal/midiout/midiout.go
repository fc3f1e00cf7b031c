// Package midiout drains a midi.Buffer onto a real MIDI output port using
// gitlab.com/gomidi/midi/v2's message constructors and send function,
// translating each of this module's three event shapes into the wire
// messages a synth expects. The binary that links this package is
// responsible for blank-importing a gomidi/v2 driver backend (e.g.
// drivers/rtmididrv) so FindOutPort has a real port to return.
package midiout

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"

	coremidi "orca-core/internal/midi"
)

// Sender writes core MIDI events to an open output port.
type Sender struct {
	send midi.SendFunc
	port midi.OutPort
}

// Open opens a MIDI output port by name, or the first available port if
// name is empty, and returns a Sender ready to drain buffers onto it.
func Open(name string) (*Sender, error) {
	var out midi.OutPort
	var err error
	if name == "" {
		out, err = midi.FindOutPort("")
		if err != nil {
			outs := midi.GetOutPorts()
			if len(outs) == 0 {
				return nil, fmt.Errorf("midiout: no MIDI output ports available")
			}
			out = outs[0]
		}
	} else {
		out, err = midi.FindOutPort(name)
		if err != nil {
			return nil, fmt.Errorf("midiout: no output port matching %q: %w", name, err)
		}
	}

	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("midiout: opening %q: %w", out.String(), err)
	}
	return &Sender{send: send, port: out}, nil
}

// Close releases the underlying MIDI driver resources.
func (s *Sender) Close() error {
	return midi.CloseDriver()
}

// Drain writes every event in buf to the output port, in emission order,
// then clears buf.
func (s *Sender) Drain(buf *coremidi.Buffer) error {
	for _, e := range buf.Events() {
		if err := s.send(translate(e)); err != nil {
			return fmt.Errorf("midiout: sending event: %w", err)
		}
	}
	buf.Clear()
	return nil
}

func translate(e coremidi.Event) midi.Message {
	switch ev := e.(type) {
	case coremidi.Note:
		number := uint8(12*ev.Octave + ev.Note)
		if ev.Velocity == 0 {
			return midi.NoteOff(uint8(ev.Channel), number)
		}
		return midi.NoteOn(uint8(ev.Channel), number, uint8(ev.Velocity))
	case coremidi.CC:
		return midi.ControlChange(uint8(ev.Channel), uint8(ev.Control), uint8(ev.Value))
	case coremidi.PitchBend:
		value := (int16(ev.MSB) << 7) | int16(ev.LSB)
		return midi.Pitchbend(uint8(ev.Channel), value-8192)
	default:
		return nil
	}
}
