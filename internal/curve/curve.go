// Package curve runs the full generation pipeline: rewrite the axiom,
// encode turtle commands, integrate the path.
package curve

import (
	"github.com/san-kum/lindsim/internal/lsys"
	"github.com/san-kum/lindsim/internal/turtle"
)

// Result holds everything a single generation run produces. All fields are
// derived from (definition, iterations) alone and are never mutated after
// Generate returns.
type Result struct {
	System     string
	Iterations int
	Symbols    string
	Commands   []turtle.Command
	Points     []turtle.Point
}

// Generate expands def for n generations and integrates the turtle path.
// It fails fast on the first pipeline error and returns no partial output.
func Generate(def lsys.Definition, n int) (*Result, error) {
	symbols, err := lsys.Rewrite(def, n)
	if err != nil {
		return nil, err
	}

	cmds, err := turtle.Encode(symbols, def, n)
	if err != nil {
		return nil, err
	}

	return &Result{
		System:     def.Name,
		Iterations: n,
		Symbols:    symbols,
		Commands:   cmds,
		Points:     turtle.BuildPath(cmds),
	}, nil
}
