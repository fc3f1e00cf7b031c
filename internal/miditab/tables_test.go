package miditab

import (
	"testing"

	"orca-core/internal/glyph"
)

func TestNoteSemitone(t *testing.T) {
	cases := []struct {
		g    glyph.Glyph
		want int
	}{
		{'C', 0}, {'D', 2}, {'E', 4}, {'F', 5}, {'G', 7}, {'A', 9}, {'B', 11},
		{'H', 9}, {'I', 11}, {'J', 0}, // H,I equated to A,B; J continues as C
		{'c', 1}, // lowercase sharpens by one
	}
	for _, c := range cases {
		got, ok := NoteSemitone(c.g)
		if !ok {
			t.Fatalf("NoteSemitone(%q) not ok", c.g)
		}
		if got != c.want {
			t.Errorf("NoteSemitone(%q) = %d, want %d", c.g, got, c.want)
		}
	}
}

func TestNoteSemitoneRejectsNonLetters(t *testing.T) {
	if _, ok := NoteSemitone('.'); ok {
		t.Errorf("'.' should not be a valid note letter")
	}
	if _, ok := NoteSemitone('3'); ok {
		t.Errorf("'3' should not be a valid note letter")
	}
}

func TestChordForRanges(t *testing.T) {
	if ChordFor(-1) != nil {
		t.Errorf("ChordFor(-1) should be nil")
	}
	if ChordFor(62) != nil {
		t.Errorf("ChordFor(62) should be nil")
	}
	if got := ChordFor(0); len(got) == 0 {
		t.Errorf("ChordFor(0) should return the enriched major chord")
	}
	// a..z root chords start at index 10
	major := ChordFor(10)
	if len(major) != 3 || major[0] != 0 || major[1] != 4 || major[2] != 7 {
		t.Errorf("ChordFor(10) = %v, want [0 4 7]", major)
	}
}

func TestInversionStartsAtZero(t *testing.T) {
	inv := ChordFor(36) // inversion of major
	if inv[0] != 0 {
		t.Errorf("inversion should start at 0, got %v", inv)
	}
}

func TestScaleForEssential(t *testing.T) {
	major := ScaleFor(0)
	want := []int{0, 2, 4, 5, 7, 9, 11}
	if len(major) != len(want) {
		t.Fatalf("ScaleFor(0) length = %d, want %d", len(major), len(want))
	}
	for i := range want {
		if major[i] != want[i] {
			t.Errorf("ScaleFor(0)[%d] = %d, want %d", i, major[i], want[i])
		}
	}
}

func TestWaveByShapeNormalizedRange(t *testing.T) {
	w := WaveByShape(0)
	for _, g := range w {
		v := float64(glyph.Value(g)) / 35.0
		if v < 0 || v > 1 {
			t.Fatalf("wave value out of [0,1]: %v", v)
		}
	}
}
