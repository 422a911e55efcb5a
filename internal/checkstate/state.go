// Package checkstate is the State component: fresh-name sources, the
// owned substitution, and the two deferred-obligation queues (overload
// candidates, scope escape), plus the Solve pass that discharges them.
package checkstate

import (
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/typesystem"
)

// OverloadObligation is a pending constraint that Var must eventually
// unify with one member of Candidates, tried in declared order.
type OverloadObligation struct {
	Loc        loc.Loc
	Var        typesystem.TyVar
	Candidates []typesystem.Sym
}

// EscapeObligation is a pending constraint that no type name generated
// after Scope was recorded may occur in Ty once the substitution is
// final.
type EscapeObligation struct {
	Loc   loc.Loc
	Ty    typesystem.Ty
	Scope map[typesystem.Sym]struct{}
}

// State holds everything that accumulates across a single top-level
// check pass: fresh-id counters, the substitution, and the two
// obligation queues. It is owned by the driver and mutated in place.
type State struct {
	nextTyVar int
	Subst     typesystem.Subst

	overloads []OverloadObligation
	escapes   []EscapeObligation
}

// New returns a fresh State with an empty substitution and no
// obligations.
func New() *State {
	return &State{Subst: typesystem.NewSubst()}
}

// NewTyVar allocates a fresh, unbound type variable.
func (s *State) NewTyVar(equality bool) typesystem.TyVar {
	s.nextTyVar++
	return typesystem.TyVar{ID: s.nextTyVar, Equality: equality}
}

// NewVarTy is a convenience wrapper around NewTyVar for call sites that
// just want a fresh unknown Ty.
func (s *State) NewVarTy() typesystem.Ty {
	return typesystem.VarTy{Var: s.NewTyVar(false)}
}

// RecordOverload queues an overload obligation.
func (s *State) RecordOverload(ob OverloadObligation) {
	s.overloads = append(s.overloads, ob)
}

// RecordEscape queues a scope-escape obligation.
func (s *State) RecordEscape(ob EscapeObligation) {
	s.escapes = append(s.escapes, ob)
}

// SolveError reports which obligation kind failed; the checker's
// diagnostics package turns this into a located error.
type SolveError struct {
	Overload bool // true: NoSuitableOverload at Loc; false: TyNameEscape at Loc
	Loc      loc.Loc
}

func (e *SolveError) Error() string {
	if e.Overload {
		return "no suitable overload found"
	}
	return "expression causes a type name to escape its scope"
}

// Solve discharges both obligation queues in order: every overload
// obligation first, then every scope-escape obligation. Overload
// resolution must run first because adopting a candidate's substitution
// can sharpen types that later escape checks inspect.
func (s *State) Solve() error {
	for _, ob := range s.overloads {
		if err := s.solveOverload(ob); err != nil {
			return err
		}
	}
	for _, ob := range s.escapes {
		if err := s.solveEscape(ob); err != nil {
			return err
		}
	}
	return nil
}

func (s *State) solveOverload(ob OverloadObligation) error {
	for _, cand := range ob.Candidates {
		trial := s.Subst.Clone()
		candTy := typesystem.CtorTy{Sym: cand}
		if err := typesystem.Unify(trial, typesystem.VarTy{Var: ob.Var}, candTy); err == nil {
			s.Subst = trial
			return nil
		}
	}
	return &SolveError{Overload: true, Loc: ob.Loc}
}

func (s *State) solveEscape(ob EscapeObligation) error {
	final := typesystem.Apply(s.Subst, ob.Ty)
	for name := range typesystem.TypeNames(final) {
		if _, ok := ob.Scope[name]; !ok {
			return &SolveError{Overload: false, Loc: ob.Loc}
		}
	}
	return nil
}
