// Package tick implements the evaluator: one synchronous, row-major pass
// over the grid that dispatches every live, unmarked cell to its operator
// behavior and collects the MIDI events it produces.
package tick

import (
	"orca-core/internal/debug"
	"orca-core/internal/glyph"
	"orca-core/internal/grid"
	"orca-core/internal/midi"
	"orca-core/internal/operator"
	"orca-core/internal/state"
	"orca-core/internal/vars"
)

// Evaluator owns the persistent state that survives across ticks: the
// per-cell MIDI interpolator/bouncer/arpeggiator state. Everything else a
// tick touches (the grid, the variable slots, the event buffer) is either
// owned by the caller or scoped to a single tick.
type Evaluator struct {
	State *state.Store

	// Breaks is optional; when set, Run checks it before dispatching each
	// cell and collects any coordinates it hits.
	Breaks *debug.Breakpoints

	// Logger is optional; when set, Run reports each dispatch and a
	// per-tick summary through it.
	Logger *debug.Logger
}

// NewEvaluator returns a ready-to-run evaluator with empty persistent
// state.
func NewEvaluator() *Evaluator {
	return &Evaluator{State: state.NewStore()}
}

// Run executes one tick: it scans g in row-major order, dispatching every
// live, unmarked cell, appending any MIDI events produced to events. tick
// 0 additionally triggers a MIDI Panic after the scan completes. seed
// feeds the deterministic hash used by uppercase R and the arpeggiator's
// random pattern. Run returns the coordinates of any armed breakpoints it
// hit this tick, in dispatch order; callers that don't use Breaks get nil
// back.
func (e *Evaluator) Run(g *grid.Grid, tickNumber, seed int, events *midi.Buffer) []debug.Breakpoint {
	g.ResetMarks()
	vs := vars.New()
	var hits []debug.Breakpoint

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.Glyph(y, x) == glyph.Empty {
				continue
			}
			if !g.Dispatchable(y, x) {
				continue
			}
			if e.Breaks != nil && e.Breaks.Hit(y, x) {
				hits = append(hits, debug.Breakpoint{Y: y, X: x, Enabled: true})
			}
			if e.Logger != nil {
				e.Logger.LogOperatorf(tickNumber, y, x, debug.LogLevelTrace, "dispatching %q", g.Glyph(y, x))
			}
			ctx := operator.Context{
				Grid:   g,
				Y:      y,
				X:      x,
				Tick:   tickNumber,
				Seed:   seed,
				Vars:   &vs,
				Events: events,
				State:  e.State,
			}
			operator.Dispatch(ctx)
		}
	}

	if tickNumber == 0 {
		midi.Panic(events)
	}
	if e.Logger != nil {
		e.Logger.LogTickf(tickNumber, debug.LogLevelDebug, "dispatched, %d MIDI events queued", events.Len())
	}
	return hits
}
