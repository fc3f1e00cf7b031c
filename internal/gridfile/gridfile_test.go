package gridfile

import (
	"path/filepath"
	"testing"

	"orca-core/internal/glyph"
)

func TestParsePadsShortRows(t *testing.T) {
	g, err := Parse([]byte("1A3\n.\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width != 3 || g.Height != 2 {
		t.Fatalf("dimensions = %dx%d, want 3x2", g.Width, g.Height)
	}
	if g.Glyph(1, 1) != glyph.Empty || g.Glyph(1, 2) != glyph.Empty {
		t.Errorf("short row should be padded with Empty")
	}
}

func TestParseTrimsCRLF(t *testing.T) {
	g, err := Parse([]byte("1A3\r\n...\r\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Glyph(0, 0) != '1' {
		t.Errorf("CRLF line ending leaked into the grid")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("")); err == nil {
		t.Errorf("expected an error for an empty file")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.orca")

	g, err := Parse([]byte("1A3\n..."))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if err := Save(path, g); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.String() != g.String() {
		t.Errorf("round trip mismatch:\n%s\nvs\n%s", loaded.String(), g.String())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.orca")); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}
