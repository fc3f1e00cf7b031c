package midi

// Panic-control CC numbers: All Sound Off, Reset All Controllers, All
// Notes Off.
const (
	ccAllSoundOff        = 120
	ccResetAllControllers = 121
	ccAllNotesOff        = 123
)

// Panic emits, on every channel 0..15, a velocity-0 Note event for each of
// the 128 valid MIDI note numbers plus the three all-notes-off control
// changes — invoked automatically at tick 0 (spec §4.4) and available to
// callers as an explicit command.
func Panic(buf *Buffer) {
	for channel := 0; channel < 16; channel++ {
		for number := 0; number < 128; number++ {
			buf.Emit(Note{
				Channel:  channel,
				Octave:   number / 12,
				Note:     number % 12,
				Velocity: 0,
				Duration: 0,
				Mono:     false,
			})
		}
		buf.Emit(CC{Channel: channel, Control: ccAllSoundOff, Value: 0})
		buf.Emit(CC{Channel: channel, Control: ccResetAllControllers, Value: 0})
		buf.Emit(CC{Channel: channel, Control: ccAllNotesOff, Value: 0})
	}
}
