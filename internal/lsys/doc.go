// Package lsys implements the string-rewriting engine for deterministic,
// context-free L-systems.
//
// A [Definition] bundles an axiom, a total rule table, and per-symbol turtle
// actions. [Rewrite] expands the axiom under parallel substitution:
//
//	def, _ := catalog.New().Get("koch")
//	s, err := lsys.Rewrite(def, 3)
//
// The package is pure: no I/O, no globals, identical inputs always yield
// identical strings.
package lsys
