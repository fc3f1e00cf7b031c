package midiout

import (
	"testing"

	coremidi "orca-core/internal/midi"
)

func TestTranslateNoteOnAndOff(t *testing.T) {
	on := translate(coremidi.Note{Channel: 1, Octave: 4, Note: 0, Velocity: 100})
	if on == nil {
		t.Fatal("translate(note-on) returned nil")
	}

	off := translate(coremidi.Note{Channel: 1, Octave: 4, Note: 0, Velocity: 0})
	if off == nil {
		t.Fatal("translate(note-off) returned nil")
	}
}

func TestTranslateCC(t *testing.T) {
	msg := translate(coremidi.CC{Channel: 2, Control: 74, Value: 64})
	if msg == nil {
		t.Fatal("translate(cc) returned nil")
	}
}

func TestTranslatePitchBend(t *testing.T) {
	msg := translate(coremidi.PitchBend{Channel: 0, MSB: 64, LSB: 0})
	if msg == nil {
		t.Fatal("translate(pitchbend) returned nil")
	}
}
