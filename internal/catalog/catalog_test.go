package catalog

import (
	"errors"
	"testing"

	"github.com/san-kum/lindsim/internal/lsys"
)

func TestGet_Known(t *testing.T) {
	cat := New()
	for _, name := range []string{"koch", "sierpinski", "cesaro", "koch-quad"} {
		def, err := cat.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", name, err)
		}
		if def.Name != name {
			t.Errorf("Get(%q).Name = %q", name, def.Name)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	cat := New()
	_, err := cat.Get("dragon")
	if !errors.Is(err, ErrUnknownSystem) {
		t.Errorf("expected ErrUnknownSystem, got %v", err)
	}
}

func TestList_Sorted(t *testing.T) {
	cat := New()
	names := cat.List()
	if len(names) != 4 {
		t.Fatalf("expected 4 systems, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("List not sorted: %v", names)
		}
	}
}

// Every catalogued definition must have a closed rule table and an axiom
// at depth zero that satisfies the encoder's start-symbol precondition.
func TestBuiltins_WellFormed(t *testing.T) {
	cat := New()
	for _, name := range cat.List() {
		def, err := cat.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		if err := def.Validate(); err != nil {
			t.Errorf("%s: %v", name, err)
		}
		if def.Actions[def.Axiom] != lsys.Move {
			t.Errorf("%s: axiom %q is not a forward symbol", name, def.Axiom)
		}
		if def.MaxDepth <= 0 {
			t.Errorf("%s: MaxDepth must be positive", name)
		}
	}
}

// Rewriting any catalogued system keeps the first symbol forward at every
// depth, because all built-in grammars begin their replacement strings with
// a forward symbol.
func TestBuiltins_StartSymbolStable(t *testing.T) {
	cat := New()
	for _, name := range cat.List() {
		def, err := cat.Get(name)
		if err != nil {
			t.Fatalf("Get(%q): %v", name, err)
		}
		for n := 0; n <= 4; n++ {
			s, err := lsys.Rewrite(def, n)
			if err != nil {
				t.Fatalf("%s n=%d: %v", name, n, err)
			}
			first := []rune(s)[0]
			if def.Actions[first] != lsys.Move {
				t.Errorf("%s n=%d: first symbol %q is not forward", name, n, first)
			}
		}
	}
}

func TestCatalog_AxiomAtZero(t *testing.T) {
	cat := New()
	for _, name := range cat.List() {
		def, _ := cat.Get(name)
		s, err := lsys.Rewrite(def, 0)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if s != string(def.Axiom) {
			t.Errorf("%s: Rewrite(def, 0) = %q, want axiom %q", name, s, def.Axiom)
		}
	}
}
