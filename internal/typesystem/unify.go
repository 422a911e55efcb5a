package typesystem

import (
	"fmt"

	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/strstore"
)

// ErrKind tags the shape of a unification failure. The checker's
// diagnostics package turns one of these, plus a location, into a
// located error; this package only knows about types, never locations.
type ErrKind int

const (
	ErrHeadMismatch ErrKind = iota
	ErrMissingLabel
	ErrCircularity
)

// UnifyError is the failure of Unify or Bind.
type UnifyError struct {
	Kind  ErrKind
	Label label.Label // ErrMissingLabel
	Var   TyVar       // ErrCircularity
	Occ   Ty          // ErrCircularity
	Lhs   Ty          // ErrHeadMismatch
	Rhs   Ty          // ErrHeadMismatch
}

func (e *UnifyError) Error() string {
	switch e.Kind {
	case ErrHeadMismatch:
		return "mismatched types"
	case ErrMissingLabel:
		return "type is missing label"
	case ErrCircularity:
		return "circularity"
	default:
		return "unification error"
	}
}

// Render formats a UnifyError with the rendered types, per the type
// rendering rules; used by the diagnostics layer.
func (e *UnifyError) Render(store *strstore.StrStore) string {
	switch e.Kind {
	case ErrHeadMismatch:
		return fmt.Sprintf("mismatched types: %s vs %s", String(e.Lhs, store), String(e.Rhs, store))
	case ErrMissingLabel:
		return fmt.Sprintf("type is missing label %s", e.Label.String(store))
	case ErrCircularity:
		return fmt.Sprintf("circularity: 't%d in %s", e.Var.ID, String(e.Occ, store))
	default:
		return e.Error()
	}
}

// Unify applies the current substitution to both operands, then unifies
// them, mutating subst in place as bindings are produced.
func Unify(subst Subst, t1, t2 Ty) error {
	t1 = Apply(subst, t1)
	t2 = Apply(subst, t2)
	return unify(subst, t1, t2)
}

func unify(subst Subst, t1, t2 Ty) error {
	if v1, ok := t1.(VarTy); ok {
		return Bind(subst, v1.Var, t2)
	}
	if v2, ok := t2.(VarTy); ok {
		return Bind(subst, v2.Var, t1)
	}
	switch x1 := t1.(type) {
	case RecordTy:
		x2, ok := t2.(RecordTy)
		if !ok {
			return &UnifyError{Kind: ErrHeadMismatch, Lhs: t1, Rhs: t2}
		}
		return unifyRecords(subst, x1, x2)
	case ArrowTy:
		x2, ok := t2.(ArrowTy)
		if !ok {
			return &UnifyError{Kind: ErrHeadMismatch, Lhs: t1, Rhs: t2}
		}
		if err := Unify(subst, x1.Dom, x2.Dom); err != nil {
			return err
		}
		return Unify(subst, x1.Ran, x2.Ran)
	case CtorTy:
		x2, ok := t2.(CtorTy)
		if !ok || !x1.Sym.Eq(x2.Sym) {
			return &UnifyError{Kind: ErrHeadMismatch, Lhs: t1, Rhs: t2}
		}
		for i := range x1.Args {
			if err := Unify(subst, x1.Args[i], x2.Args[i]); err != nil {
				return err
			}
		}
		return nil
	default:
		panic(fmt.Sprintf("typesystem: unhandled Ty %T", t1))
	}
}

func unifyRecords(subst Subst, r1, r2 RecordTy) error {
	seen := map[label.Label]struct{}{}
	var labels []label.Label
	for _, f := range r1.Fields {
		if _, ok := seen[f.Label]; !ok {
			seen[f.Label] = struct{}{}
			labels = append(labels, f.Label)
		}
	}
	for _, f := range r2.Fields {
		if _, ok := seen[f.Label]; !ok {
			seen[f.Label] = struct{}{}
			labels = append(labels, f.Label)
		}
	}
	for _, l := range labels {
		v1, ok1 := r1.lookup(l)
		v2, ok2 := r2.lookup(l)
		if !ok1 || !ok2 {
			return &UnifyError{Kind: ErrMissingLabel, Label: l}
		}
		if err := Unify(subst, v1, v2); err != nil {
			return err
		}
	}
	return nil
}

// Bind unifies a bare variable against a type: a no-op if t is the same
// variable, an occurs-check failure if v is free in t, else an idempotent
// insertion into subst.
func Bind(subst Subst, v TyVar, t Ty) error {
	if vt, ok := t.(VarTy); ok && vt.Var.ID == v.ID {
		return nil
	}
	if _, occurs := FreeVars(t)[v.ID]; occurs {
		return &UnifyError{Kind: ErrCircularity, Var: v, Occ: t}
	}
	subst.Insert(v, t)
	return nil
}
