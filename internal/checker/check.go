// Package checker wires StandardBasis, State, and the Inferencer
// together into the single entry point the rest of the toolchain calls:
// Check.
package checker

import (
	"github.com/vael-lang/vael/internal/analyzer"
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/basis"
	"github.com/vael-lang/vael/internal/checkstate"
	"github.com/vael-lang/vael/internal/config"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/strstore"
)

// Check decides whether topDecs is well-typed. On success it returns
// nil; on failure it returns the first located error encountered,
// whether during the walk or during Solve.
func Check(store *strstore.StrStore, topDecs []ast.TopDec) error {
	return CheckWithExtension(store, topDecs, nil)
}

// CheckWithExtension is Check, but seeded from StandardBasis plus ext's
// additional overloaded operators (the vaelcheck `-c` flag's
// `basis_extension` file). A nil ext behaves exactly like Check.
func CheckWithExtension(store *strstore.StrStore, topDecs []ast.TopDec, ext *config.BasisExtension) error {
	seed := basis.New(store).ApplyExtension(store, ext)
	inf := analyzer.New(store)
	cur := seed.Basis

	for _, td := range topDecs {
		next, err := inf.CkTopDec(cur, td)
		if err != nil {
			return err
		}
		cur = next
	}

	if err := inf.State.Solve(); err != nil {
		if se, ok := err.(*checkstate.SolveError); ok {
			return diagnostics.FromSolveError(se)
		}
		return err
	}
	return nil
}
