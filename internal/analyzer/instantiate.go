// Package analyzer is the Inferencer: CkExp, CkPat, CkTy, CkDec,
// CkTopDec, CkCases, and Generalize, operating over the four AST sorts
// plus the top-level dispatcher.
package analyzer

import (
	"github.com/vael-lang/vael/internal/checkstate"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/typesystem"
)

// Inferencer carries the mutable State and the string interner every
// check operation needs to render a diagnostic.
type Inferencer struct {
	State *checkstate.State
	Store *strstore.StrStore
}

// New returns an Inferencer over a fresh State.
func New(store *strstore.StrStore) *Inferencer {
	return &Inferencer{State: checkstate.New(), Store: store}
}

// Instantiate opens a scheme: a fresh type variable is allocated for
// each bound variable, preserving its equality flag, and the body is
// rewritten. For an overloaded scheme (exactly one bound, non-equality
// variable by construction) this additionally records an overload
// obligation on that one fresh variable.
func (inf *Inferencer) Instantiate(l loc.Loc, scheme typesystem.TyScheme) typesystem.Ty {
	subst := typesystem.NewSubst()
	freshVars := make([]typesystem.TyVar, len(scheme.BoundVars))
	for i, bv := range scheme.BoundVars {
		fresh := inf.State.NewTyVar(bv.Equality)
		freshVars[i] = fresh
		subst[bv.ID] = typesystem.VarTy{Var: fresh}
	}
	body := typesystem.Apply(subst, scheme.Body)
	if scheme.IsOverloaded() {
		inf.State.RecordOverload(checkstate.OverloadObligation{
			Loc:        l,
			Var:        freshVars[0],
			Candidates: scheme.Overload,
		})
	}
	return body
}
