package miditab

import (
	"math"

	"orca-core/internal/glyph"
)

// WaveLen is the length of one bouncer waveform cycle.
const WaveLen = 128

// Wave is one of the eight bouncer waveforms, encoded as base-36 glyphs so
// the normalized height at a cursor position is glyph.Value(wave[i])/35.
type Wave [WaveLen]glyph.Glyph

func buildWave(height func(i int) float64) Wave {
	var w Wave
	for i := 0; i < WaveLen; i++ {
		h := height(i)
		if h < 0 {
			h = 0
		}
		if h > 1 {
			h = 1
		}
		w[i] = glyph.Of(int(math.Round(h * 35)))
	}
	return w
}

func invertWave(w Wave) Wave {
	var out Wave
	for i, g := range w {
		out[i] = glyph.Of(35 - glyph.Value(g))
	}
	return out
}

// Waveforms indexes the eight bouncer shapes by name, matching the
// triangle/sine/square/saw (and inverted variant) pairing spec §4.3
// describes for the ';' operator.
var Waveforms = buildWaveforms()

func buildWaveforms() map[string]Wave {
	triangle := buildWave(func(i int) float64 {
		// ramps 0 -> 1 over the first half, 1 -> 0 over the second.
		half := WaveLen / 2
		if i < half {
			return float64(i) / float64(half)
		}
		return 1 - float64(i-half)/float64(half)
	})
	sine := buildWave(func(i int) float64 {
		return 0.5 * (1 + math.Sin(2*math.Pi*float64(i)/float64(WaveLen)))
	})
	square := buildWave(func(i int) float64 {
		if i < WaveLen/2 {
			return 1
		}
		return 0
	})
	saw := buildWave(func(i int) float64 {
		return float64(i) / float64(WaveLen-1)
	})

	return map[string]Wave{
		"triangle":    triangle,
		"triangleInv": invertWave(triangle),
		"sine":        sine,
		"sineInv":     invertWave(sine),
		"square":      square,
		"squareInv":   invertWave(square),
		"saw":         saw,
		"sawInv":      invertWave(saw),
	}
}

// WaveByShape maps the bouncer's shape parameter (a glyph whose base-36
// value selects one of the eight waveforms) to the waveform itself.
func WaveByShape(shape glyph.Glyph) Wave {
	names := []string{"triangle", "triangleInv", "sine", "sineInv", "square", "squareInv", "saw", "sawInv"}
	idx := glyph.Value(shape) % len(names)
	return Waveforms[names[idx]]
}
