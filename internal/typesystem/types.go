// Package typesystem is the TypeAlgebra, Substitution, and Unifier: the
// representation of types, type schemes, type variables, and generated
// type-constructor symbols; free-variable and type-name queries;
// substitution application; and first-order unification.
package typesystem

import (
	"fmt"
	"strings"

	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/strstore"
)

// Ty is a type: Var, Record, Arrow, or Ctor.
type Ty interface {
	tyNode()
}

// VarTy is an as-yet-unsolved type variable.
type VarTy struct{ Var TyVar }

func (VarTy) tyNode() {}

// RecordField is one label/type pair of a record type.
type RecordField struct {
	Label label.Label
	Ty    Ty
}

// RecordTy is a record type. Field order is preserved only for
// diagnostics; two record types unify iff their label sets are equal
// and per-label types unify, regardless of order. The label set must
// not contain a repeated label.
type RecordTy struct{ Fields []RecordField }

func (RecordTy) tyNode() {}

// ArrowTy is a function type.
type ArrowTy struct {
	Dom Ty
	Ran Ty
}

func (ArrowTy) tyNode() {}

// CtorTy is an application of a nominal type constructor to type
// arguments; arity is fixed by the TyInfo that declared Sym.
type CtorTy struct {
	Args []Ty
	Sym  Sym
}

func (CtorTy) tyNode() {}

// Unit is the empty record, i.e. `unit`.
func Unit() Ty { return RecordTy{} }

// lookup returns the field type for a label, or nil if absent.
func (r RecordTy) lookup(l label.Label) (Ty, bool) {
	for _, f := range r.Fields {
		if f.Label.Eq(l) {
			return f.Ty, true
		}
	}
	return nil, false
}

// FreeVars returns the set of type variables occurring in t, keyed by
// TyVar.ID (the only part of a TyVar that carries identity).
func FreeVars(t Ty) map[int]TyVar {
	out := map[int]TyVar{}
	freeVarsInto(t, out)
	return out
}

func freeVarsInto(t Ty, out map[int]TyVar) {
	switch x := t.(type) {
	case VarTy:
		out[x.Var.ID] = x.Var
	case RecordTy:
		for _, f := range x.Fields {
			freeVarsInto(f.Ty, out)
		}
	case ArrowTy:
		freeVarsInto(x.Dom, out)
		freeVarsInto(x.Ran, out)
	case CtorTy:
		for _, a := range x.Args {
			freeVarsInto(a, out)
		}
	default:
		panic(fmt.Sprintf("typesystem: unhandled Ty %T", t))
	}
}

// TypeNames returns the set of generated-symbol names occurring in t:
// every Sym reachable through a CtorTy node.
func TypeNames(t Ty) map[Sym]struct{} {
	out := map[Sym]struct{}{}
	typeNamesInto(t, out)
	return out
}

func typeNamesInto(t Ty, out map[Sym]struct{}) {
	switch x := t.(type) {
	case VarTy:
	case RecordTy:
		for _, f := range x.Fields {
			typeNamesInto(f.Ty, out)
		}
	case ArrowTy:
		typeNamesInto(x.Dom, out)
		typeNamesInto(x.Ran, out)
	case CtorTy:
		out[x.Sym] = struct{}{}
		for _, a := range x.Args {
			typeNamesInto(a, out)
		}
	default:
		panic(fmt.Sprintf("typesystem: unhandled Ty %T", t))
	}
}

// Apply rewrites every VarTy in t present in s to its image, recursing
// through the rest of the structure.
func Apply(s Subst, t Ty) Ty {
	switch x := t.(type) {
	case VarTy:
		if img, ok := s[x.Var.ID]; ok {
			return img
		}
		return x
	case RecordTy:
		fields := make([]RecordField, len(x.Fields))
		for i, f := range x.Fields {
			fields[i] = RecordField{Label: f.Label, Ty: Apply(s, f.Ty)}
		}
		return RecordTy{Fields: fields}
	case ArrowTy:
		return ArrowTy{Dom: Apply(s, x.Dom), Ran: Apply(s, x.Ran)}
	case CtorTy:
		args := make([]Ty, len(x.Args))
		for i, a := range x.Args {
			args[i] = Apply(s, a)
		}
		return CtorTy{Args: args, Sym: x.Sym}
	default:
		panic(fmt.Sprintf("typesystem: unhandled Ty %T", t))
	}
}

// String renders t for diagnostics, per the type-rendering rules:
// records in source order as `{ l : t, ... }`, arrows as `(t1) -> (t2)`,
// constructor applications as the base name when nullary else
// `(t1, ..., tn) name`, and type variables with one or two leading
// quotes by equality flag followed by `t` and the identifier.
func String(t Ty, store *strstore.StrStore) string {
	switch x := t.(type) {
	case VarTy:
		quotes := "'"
		if x.Var.Equality {
			quotes = "''"
		}
		return fmt.Sprintf("%st%d", quotes, x.Var.ID)
	case RecordTy:
		if len(x.Fields) == 0 {
			return "unit"
		}
		parts := make([]string, len(x.Fields))
		for i, f := range x.Fields {
			parts[i] = fmt.Sprintf("%s : %s", f.Label.String(store), String(f.Ty, store))
		}
		return fmt.Sprintf("{ %s }", strings.Join(parts, ", "))
	case ArrowTy:
		return fmt.Sprintf("(%s) -> (%s)", String(x.Dom, store), String(x.Ran, store))
	case CtorTy:
		name := store.Lookup(x.Sym.Name)
		if len(x.Args) == 0 {
			return name
		}
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			parts[i] = String(a, store)
		}
		return fmt.Sprintf("(%s) %s", strings.Join(parts, ", "), name)
	default:
		panic(fmt.Sprintf("typesystem: unhandled Ty %T", t))
	}
}
