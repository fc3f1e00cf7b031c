// Package gridfile loads a grid from a plain-text file: one row per
// line, one glyph per column, short rows padded with '.'. It reads the
// whole file up front and validates it before building a Grid, rather
// than parsing anything format-specific.
package gridfile

import (
	"bytes"
	"fmt"
	"os"

	"orca-core/internal/grid"
)

// maxDimension bounds both width and height to keep a malformed file from
// allocating an unreasonable grid.
const maxDimension = 1024

// Load reads path and parses it into a Grid. Lines are split on '\n';
// a trailing '\r' (CRLF files) is trimmed from each line. Blank trailing
// lines are dropped.
func Load(path string) (*grid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("gridfile: reading %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Grid from raw file contents, as Load does.
func Parse(data []byte) (*grid.Grid, error) {
	lines := bytes.Split(data, []byte("\n"))
	for len(lines) > 0 && len(bytes.TrimRight(lines[len(lines)-1], "\r")) == 0 {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, fmt.Errorf("gridfile: empty grid")
	}
	if len(lines) > maxDimension {
		return nil, fmt.Errorf("gridfile: %d rows exceeds the %d-row limit", len(lines), maxDimension)
	}

	rows := make([][]byte, len(lines))
	for i, line := range lines {
		line = bytes.TrimRight(line, "\r")
		if len(line) > maxDimension {
			return nil, fmt.Errorf("gridfile: row %d is %d columns, exceeds the %d-column limit", i, len(line), maxDimension)
		}
		rows[i] = line
	}
	return grid.FromRows(rows), nil
}

// Save renders g back to the same row-per-line, '.'-padded format Load
// reads, so a file round-trips through Load(Save(g)) unchanged.
func Save(path string, g *grid.Grid) error {
	if err := os.WriteFile(path, []byte(g.String()+"\n"), 0o644); err != nil {
		return fmt.Errorf("gridfile: writing %s: %w", path, err)
	}
	return nil
}
