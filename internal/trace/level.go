package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff    Level = iota // no tracing
	LevelError               // only failed conversions
	LevelPhase               // command boundaries
	LevelDetail              // every converted item
	LevelDebug               // everything including tokens
)

// String returns the string representation of Level.
func (l Level) String() string {
	switch l {
	case LevelOff:
		return "off"
	case LevelError:
		return "error"
	case LevelPhase:
		return "phase"
	case LevelDetail:
		return "detail"
	case LevelDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseLevel converts a string to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "off", "":
		return LevelOff, nil
	case "error":
		return LevelError, nil
	case "phase":
		return LevelPhase, nil
	case "detail":
		return LevelDetail, nil
	case "debug":
		return LevelDebug, nil
	default:
		return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|detail|debug)", s)
	}
}

// ShouldEmit reports whether an event of the given scope passes this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopeCommand
	case LevelDetail:
		return scope <= ScopeItem
	case LevelDebug:
		return true
	}
	return false
}

// ShouldEmitEvent is ShouldEmit plus the error level rule: failures are kept
// whenever tracing is on at all.
func (l Level) ShouldEmitEvent(ev *Event) bool {
	if l == LevelOff {
		return false
	}
	return ev.Kind == KindError || l.ShouldEmit(ev.Scope)
}
