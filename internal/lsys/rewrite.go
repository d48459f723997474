package lsys

import (
	"fmt"
	"strings"
)

// Rewrite expands the axiom of def for n generations and returns the
// resulting symbol string. n = 0 returns the axiom unchanged.
//
// Each generation replaces every symbol of the current string simultaneously,
// using the string as it existed before the generation began. Building a
// fresh output string per generation gives exactly this parallel semantics:
// symbols introduced by a rule are never re-expanded within the same
// generation, which an in-place left-to-right substitution would get wrong.
func Rewrite(def Definition, n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("%w: %d", ErrInvalidIteration, n)
	}

	cur := string(def.Axiom)
	for gen := 0; gen < n; gen++ {
		var next strings.Builder
		next.Grow(2 * len(cur))
		for _, sym := range cur {
			replacement, ok := def.Rules[sym]
			if !ok {
				return "", fmt.Errorf("%w: %q at generation %d of %q", ErrUndefinedSymbol, sym, gen, def.Name)
			}
			next.WriteString(replacement)
		}
		cur = next.String()
	}
	return cur, nil
}
