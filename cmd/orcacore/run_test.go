package main

import (
	"strings"
	"testing"

	"orca-core/internal/midi"
)

func TestFormatEventLineNote(t *testing.T) {
	line := formatEventLine(3, midi.Note{Channel: 1, Octave: 4, Note: 0, Velocity: 100, Duration: 8})
	if !strings.Contains(line, "tick=3") || !strings.Contains(line, "note") {
		t.Errorf("formatEventLine = %q, missing expected fields", line)
	}
}

func TestFormatEventLineCC(t *testing.T) {
	line := formatEventLine(1, midi.CC{Channel: 0, Control: 74, Value: 64})
	if !strings.Contains(line, "cc") || !strings.Contains(line, "control=74") {
		t.Errorf("formatEventLine = %q, missing expected fields", line)
	}
}
