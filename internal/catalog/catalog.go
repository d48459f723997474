package catalog

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/lindsim/internal/lsys"
)

// ErrUnknownSystem is returned when a requested system name is not
// registered.
var ErrUnknownSystem = errors.New("unknown system")

// Catalog is the immutable registry of named L-system definitions.
type Catalog struct {
	systems map[string]lsys.Definition
}

// New builds the catalogue of built-in systems. All of them are flat
// turn-before-move grammars, so every definition satisfies the command
// encoder's start-symbol precondition at every generation.
func New() *Catalog {
	c := &Catalog{systems: make(map[string]lsys.Definition)}

	c.register(lsys.Definition{
		Name:  "koch",
		Axiom: 'S',
		Rules: map[rune]string{
			'S': "SLSRSLS",
			'L': "L",
			'R': "R",
		},
		Actions: map[rune]lsys.Action{
			'S': lsys.Move,
			'L': lsys.TurnLeft,
			'R': lsys.TurnRight,
		},
		Scale:      3,
		LeftAngle:  math.Pi / 3,
		RightAngle: -2 * math.Pi / 3,
		MaxDepth:   5,
	})

	c.register(lsys.Definition{
		Name:  "sierpinski",
		Axiom: 'A',
		Rules: map[rune]string{
			'A': "BRARB",
			'B': "ALBLA",
			'L': "L",
			'R': "R",
		},
		Actions: map[rune]lsys.Action{
			'A': lsys.Move,
			'B': lsys.Move,
			'L': lsys.TurnLeft,
			'R': lsys.TurnRight,
		},
		Scale:      2,
		LeftAngle:  math.Pi / 3,
		RightAngle: -math.Pi / 3,
		MaxDepth:   8,
	})

	// Cesaro torn curve: the Koch grammar with near-straight left turns and
	// a sharp right fold.
	c.register(lsys.Definition{
		Name:  "cesaro",
		Axiom: 'S',
		Rules: map[rune]string{
			'S': "SLSRSLS",
			'L': "L",
			'R': "R",
		},
		Actions: map[rune]lsys.Action{
			'S': lsys.Move,
			'L': lsys.TurnLeft,
			'R': lsys.TurnRight,
		},
		Scale:      3,
		LeftAngle:  85 * math.Pi / 180,
		RightAngle: -170 * math.Pi / 180,
		MaxDepth:   5,
	})

	// Quadratic Koch (type 1): right-angle variant of the Koch curve.
	c.register(lsys.Definition{
		Name:  "koch-quad",
		Axiom: 'S',
		Rules: map[rune]string{
			'S': "SLSRSRSLS",
			'L': "L",
			'R': "R",
		},
		Actions: map[rune]lsys.Action{
			'S': lsys.Move,
			'L': lsys.TurnLeft,
			'R': lsys.TurnRight,
		},
		Scale:      4,
		LeftAngle:  math.Pi / 2,
		RightAngle: -math.Pi / 2,
		MaxDepth:   4,
	})

	return c
}

func (c *Catalog) register(def lsys.Definition) {
	if err := def.Validate(); err != nil {
		panic(fmt.Sprintf("catalog: bad built-in definition: %v", err))
	}
	c.systems[def.Name] = def
}

// Get looks up a definition by name.
func (c *Catalog) Get(name string) (lsys.Definition, error) {
	def, ok := c.systems[name]
	if !ok {
		return lsys.Definition{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownSystem, name, c.List())
	}
	return def, nil
}

// List returns the registered system names, sorted.
func (c *Catalog) List() []string {
	names := make([]string, 0, len(c.systems))
	for name := range c.systems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
