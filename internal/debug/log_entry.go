package debug

import (
	"fmt"
	"time"
)

// LogLevel is the severity of a log entry.
type LogLevel int

const (
	LogLevelNone LogLevel = iota
	LogLevelError
	LogLevelWarning
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

func (l LogLevel) String() string {
	switch l {
	case LogLevelNone:
		return "NONE"
	case LogLevelError:
		return "ERROR"
	case LogLevelWarning:
		return "WARNING"
	case LogLevelInfo:
		return "INFO"
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelTrace:
		return "TRACE"
	default:
		return "UNKNOWN"
	}
}

// Component names the subsystem that produced a log entry.
type Component string

const (
	ComponentTick     Component = "Tick"
	ComponentOperator Component = "Operator"
	ComponentMIDI     Component = "MIDI"
	ComponentState    Component = "State"
	ComponentView     Component = "View"
	ComponentSystem   Component = "System"
)

// LogEntry is one log line. Tick and coordinate context are optional and
// tracked separately from the zero value, since tick 0 and cell (0,0) are
// both valid: HasTick/HasCoord say whether Tick/Y/X were actually set by
// the call that produced this entry, rather than overloading a sentinel.
type LogEntry struct {
	Timestamp time.Time
	Component Component
	Level     LogLevel
	Tick      int
	HasTick   bool
	Y, X      int
	HasCoord  bool
	Message   string
	Data      map[string]interface{}
}

// Format renders the entry as a single line, e.g.
// "[15:04:05.000] [Operator] tick=12 (3,4) DEBUG: dispatching 'A'".
func (e *LogEntry) Format() string {
	timestamp := e.Timestamp.Format("15:04:05.000")
	tick := ""
	if e.HasTick {
		tick = fmt.Sprintf(" tick=%d", e.Tick)
	}
	coord := ""
	if e.HasCoord {
		coord = fmt.Sprintf(" (%d,%d)", e.Y, e.X)
	}
	return fmt.Sprintf("[%s] [%s]%s%s %s: %s", timestamp, e.Component, tick, coord, e.Level, e.Message)
}
