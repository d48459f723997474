package lsys

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIteration is returned for a negative generation count.
	ErrInvalidIteration = errors.New("invalid iteration count")

	// ErrUndefinedSymbol is returned when a symbol reachable from the axiom
	// has no entry in the rule table.
	ErrUndefinedSymbol = errors.New("undefined symbol")
)

// Action is the turtle behavior of a single symbol, resolved once when a
// definition is built rather than by repeated set-membership checks.
type Action int

const (
	Ignore Action = iota
	Move
	TurnLeft
	TurnRight
)

func (a Action) String() string {
	switch a {
	case Move:
		return "move"
	case TurnLeft:
		return "turn-left"
	case TurnRight:
		return "turn-right"
	default:
		return "ignore"
	}
}

// Definition is one deterministic, context-free L-system: an axiom, a total
// rule table, per-symbol turtle actions, and the geometry constants that make
// successive generations self-similar. Definitions are immutable values;
// callers pass them in explicitly, never through package state.
type Definition struct {
	Name    string
	Axiom   rune
	Rules   map[rune]string
	Actions map[rune]Action

	// Scale is the per-generation shrink factor: at generation n every
	// segment has length Scale^-n.
	Scale float64

	// Turn angles in radians. Left and right need not be equal in
	// magnitude (the right turn is typically negative).
	LeftAngle  float64
	RightAngle float64

	// MaxDepth is the recommended iteration bound for interactive layers.
	// The core accepts any n >= 0; this is UI policy only.
	MaxDepth int
}

// Validate checks that the rule table is closed: the axiom has a rule and
// every symbol appearing in any replacement has a rule of its own. A closed
// table guarantees Rewrite can never hit an undefined symbol.
func (d Definition) Validate() error {
	if d.Scale <= 0 {
		return fmt.Errorf("definition %q: scale must be positive, got %v", d.Name, d.Scale)
	}
	if _, ok := d.Rules[d.Axiom]; !ok {
		return fmt.Errorf("definition %q: %w: axiom %q", d.Name, ErrUndefinedSymbol, d.Axiom)
	}
	for sym, replacement := range d.Rules {
		for _, r := range replacement {
			if _, ok := d.Rules[r]; !ok {
				return fmt.Errorf("definition %q: %w: %q in rule for %q", d.Name, ErrUndefinedSymbol, r, sym)
			}
		}
	}
	return nil
}
