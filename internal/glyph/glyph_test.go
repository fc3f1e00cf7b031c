package glyph

import "testing"

func TestValue(t *testing.T) {
	cases := []struct {
		g    Glyph
		want int
	}{
		{'0', 0}, {'9', 9},
		{'a', 10}, {'A', 10}, {'z', 35}, {'Z', 35},
		{'.', 0}, {'*', 0}, {'#', 0},
	}
	for _, c := range cases {
		if got := Value(c.g); got != c.want {
			t.Errorf("Value(%q) = %d, want %d", c.g, got, c.want)
		}
	}
}

func TestOf(t *testing.T) {
	if Of(0) != '0' {
		t.Errorf("Of(0) = %q, want '0'", Of(0))
	}
	if Of(10) != 'a' {
		t.Errorf("Of(10) = %q, want 'a'", Of(10))
	}
	if Of(35) != 'z' {
		t.Errorf("Of(35) = %q, want 'z'", Of(35))
	}
	// wraps modulo 36
	if Of(36) != Of(0) {
		t.Errorf("Of(36) = %q, want %q", Of(36), Of(0))
	}
	if Of(-1) != Of(35) {
		t.Errorf("Of(-1) = %q, want %q", Of(-1), Of(35))
	}
}

func TestWithCaseOf(t *testing.T) {
	if got := WithCaseOf('a', 'E'); got != 'A' {
		t.Errorf("WithCaseOf('a', 'E') = %q, want 'A'", got)
	}
	if got := WithCaseOf('A', 'e'); got != 'a' {
		t.Errorf("WithCaseOf('A', 'e') = %q, want 'a'", got)
	}
	if got := WithCaseOf('a', '3'); got != 'a' {
		t.Errorf("WithCaseOf('a', '3') = %q, want 'a' (digits have no case)", got)
	}
	if got := WithCaseOf('3', 'E'); got != '3' {
		t.Errorf("WithCaseOf('3', 'E') = %q, want '3' unchanged", got)
	}
}

func TestIsLowerUpper(t *testing.T) {
	if !IsLower('a') || IsUpper('a') {
		t.Errorf("'a' should be lower, not upper")
	}
	if !IsUpper('A') || IsLower('A') {
		t.Errorf("'A' should be upper, not lower")
	}
	if IsLower('3') || IsUpper('3') {
		t.Errorf("'3' should be neither")
	}
}
