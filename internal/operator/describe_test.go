package operator

import (
	"testing"

	"orca-core/internal/glyph"
)

func TestDescribeFoldsLetterCase(t *testing.T) {
	upper, _, ok := Describe('A')
	if !ok {
		t.Fatal("expected 'A' to have help text")
	}
	lower, _, ok := Describe('a')
	if !ok {
		t.Fatal("expected 'a' to have help text")
	}
	if upper != lower {
		t.Errorf("help text should not depend on case: %q vs %q", upper, lower)
	}
}

func TestDescribeUnknownGlyph(t *testing.T) {
	if _, _, ok := Describe('~'); ok {
		t.Errorf("expected no help text for '~'")
	}
}

func TestNameMatchesKnownOperators(t *testing.T) {
	cases := map[byte]string{'A': "add", ';': "bouncer", '&': "arpeggiator", '$': "scale"}
	for g, want := range cases {
		got, ok := Name(glyph.Glyph(g))
		if !ok || got != want {
			t.Errorf("Name(%q) = %q, %v; want %q, true", g, got, ok, want)
		}
	}
}
