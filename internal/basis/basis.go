// Package basis is the StandardBasis component: it seeds a fresh Basis
// with the primitive types, constructors, and overloaded operators
// every check pass starts from.
package basis

import (
	"github.com/vael-lang/vael/internal/config"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

// Syms holds the primitive type symbols, so callers building
// diagnostics or extension bases (§ config's basis-extension file) can
// refer to them by name without re-interning.
type Syms struct {
	Bool, Int, Real, String, Char, Word, List, Ref, Exn, Order typesystem.Sym
}

// Basis is the seeded StandardBasis plus the primitive symbols used to
// build it, so later code (overload candidate tables, `datatype`
// elaboration needing `exn`, and so on) can refer to the same Syms.
type Basis struct {
	Basis symbols.Basis
	Syms  Syms
}

func mkSym(store *strstore.StrStore, name string) typesystem.Sym {
	return typesystem.NewSym(store.Intern(name))
}

func tupleRecord(fields ...typesystem.Ty) typesystem.Ty {
	rf := make([]typesystem.RecordField, len(fields))
	for i, f := range fields {
		rf[i] = typesystem.RecordField{Label: label.Tuple(i), Ty: f}
	}
	return typesystem.RecordTy{Fields: rf}
}

// New builds the standard basis: bool, int, real, string, char, word,
// list, ref, exn, order; list's nil/cons, ref's ref, bool's true/false,
// order's LESS/EQUAL/GREATER, the exceptions Match and Bind, the
// polymorphic equality `=` and assignment `:=`, and the overloaded
// arithmetic/comparison operators (§4.6), in declared candidate order.
func New(store *strstore.StrStore) Basis {
	syms := Syms{
		Bool:   mkSym(store, "bool"),
		Int:    mkSym(store, "int"),
		Real:   mkSym(store, "real"),
		String: mkSym(store, "string"),
		Char:   mkSym(store, "char"),
		Word:   mkSym(store, "word"),
		List:   mkSym(store, "list"),
		Ref:    mkSym(store, "ref"),
		Exn:    mkSym(store, "exn"),
		Order:  mkSym(store, "order"),
	}

	tyEnv := symbols.TyEnv{}
	nullary := func(sym typesystem.Sym) symbols.TyInfo {
		return symbols.TyInfo{TyFcn: typesystem.Mono(typesystem.CtorTy{Sym: sym}), ValEnv: symbols.ValEnv{}}
	}
	tyEnv[syms.Bool.Name] = boolTyInfo(store, syms)
	tyEnv[syms.Int.Name] = nullary(syms.Int)
	tyEnv[syms.Real.Name] = nullary(syms.Real)
	tyEnv[syms.String.Name] = nullary(syms.String)
	tyEnv[syms.Char.Name] = nullary(syms.Char)
	tyEnv[syms.Word.Name] = nullary(syms.Word)
	tyEnv[syms.Exn.Name] = nullary(syms.Exn)
	tyEnv[syms.Order.Name] = orderTyInfo(store, syms)
	tyEnv[syms.List.Name] = listTyInfo(store, syms)
	tyEnv[syms.Ref.Name] = refTyInfo(store, syms)

	valEnv := symbols.ValEnv{}
	mergeInto(valEnv, tyEnv[syms.Bool.Name].ValEnv)
	mergeInto(valEnv, tyEnv[syms.Order.Name].ValEnv)
	mergeInto(valEnv, tyEnv[syms.List.Name].ValEnv)
	mergeInto(valEnv, tyEnv[syms.Ref.Name].ValEnv)
	valEnv[store.Intern("Match")] = symbols.NewExnInfo(typesystem.Mono(typesystem.CtorTy{Sym: syms.Exn}))
	valEnv[store.Intern("Bind")] = symbols.NewExnInfo(typesystem.Mono(typesystem.CtorTy{Sym: syms.Exn}))

	eqVar := typesystem.TyVar{ID: -1, Equality: true}
	valEnv[store.Intern("=")] = symbols.NewValInfo(typesystem.TyScheme{
		BoundVars: []typesystem.TyVar{eqVar},
		Body: typesystem.ArrowTy{
			Dom: tupleRecord(typesystem.VarTy{Var: eqVar}, typesystem.VarTy{Var: eqVar}),
			Ran: typesystem.CtorTy{Sym: syms.Bool},
		},
	})

	assignVar := typesystem.TyVar{ID: -2}
	valEnv[store.Intern(":=")] = symbols.NewValInfo(typesystem.TyScheme{
		BoundVars: []typesystem.TyVar{assignVar},
		Body: typesystem.ArrowTy{
			Dom: tupleRecord(
				typesystem.CtorTy{Args: []typesystem.Ty{typesystem.VarTy{Var: assignVar}}, Sym: syms.Ref},
				typesystem.VarTy{Var: assignVar},
			),
			Ran: typesystem.Unit(),
		},
	})

	addOverloaded(store, valEnv, "abs", unaryOverload, syms, []typesystem.Sym{syms.Int, syms.Real})
	addOverloaded(store, valEnv, "~", unaryOverload, syms, []typesystem.Sym{syms.Int, syms.Real})
	addOverloaded(store, valEnv, "div", binaryOverload, syms, []typesystem.Sym{syms.Int, syms.Word})
	addOverloaded(store, valEnv, "mod", binaryOverload, syms, []typesystem.Sym{syms.Int, syms.Word})
	addOverloaded(store, valEnv, "*", binaryOverload, syms, []typesystem.Sym{syms.Int, syms.Word})
	addOverloaded(store, valEnv, "/", binaryOverload, syms, []typesystem.Sym{syms.Real})
	addOverloaded(store, valEnv, "+", binaryOverload, syms, []typesystem.Sym{syms.Int, syms.Word, syms.Real})
	addOverloaded(store, valEnv, "-", binaryOverload, syms, []typesystem.Sym{syms.Int, syms.Word, syms.Real})
	cmpCandidates := []typesystem.Sym{syms.Int, syms.Word, syms.Real, syms.String, syms.Char}
	addOverloaded(store, valEnv, "<", binaryCmp, syms, cmpCandidates)
	addOverloaded(store, valEnv, ">", binaryCmp, syms, cmpCandidates)
	addOverloaded(store, valEnv, "<=", binaryCmp, syms, cmpCandidates)
	addOverloaded(store, valEnv, ">=", binaryCmp, syms, cmpCandidates)

	env := symbols.Env{StrEnv: symbols.StrEnv{}, TyEnv: tyEnv, ValEnv: valEnv}
	b := symbols.NewBasis()
	b = b.Extend(env)

	return Basis{Basis: b, Syms: syms}
}

// ApplyExtension adds the overloaded operators described by a
// basis-extension config file (the vaelcheck `-c` flag's
// `basis_extension` entry) on top of the seeded StandardBasis. A nil
// ext is a no-op, so callers can always pass whatever
// config.LoadBasisExtension happened to produce.
func (b Basis) ApplyExtension(store *strstore.StrStore, ext *config.BasisExtension) Basis {
	if ext == nil || len(ext.Overloads) == 0 {
		return b
	}
	ve := make(symbols.ValEnv, len(b.Basis.Env.ValEnv)+len(ext.Overloads))
	for k, v := range b.Basis.Env.ValEnv {
		ve[k] = v
	}
	for _, o := range ext.Overloads {
		candidates := make([]typesystem.Sym, len(o.Candidates))
		for i, c := range o.Candidates {
			candidates[i] = mkSym(store, c)
		}
		shape := unaryOverload
		if o.Shape == "binary" {
			shape = binaryOverload
		}
		v := typesystem.TyVar{ID: nextSyntheticID()}
		body := shape(v, b.Syms)
		if o.Result != "" {
			if arrow, ok := body.(typesystem.ArrowTy); ok {
				body = typesystem.ArrowTy{Dom: arrow.Dom, Ran: typesystem.CtorTy{Sym: mkSym(store, o.Result)}}
			}
		}
		ve[store.Intern(o.Name)] = symbols.NewValInfo(typesystem.TyScheme{
			BoundVars: []typesystem.TyVar{v},
			Body:      body,
			Overload:  candidates,
		})
	}
	env := symbols.Env{StrEnv: b.Basis.Env.StrEnv, TyEnv: b.Basis.Env.TyEnv, ValEnv: ve}
	out := symbols.Basis{TyNames: b.Basis.TyNames, FunEnv: b.Basis.FunEnv, SigEnv: b.Basis.SigEnv, Env: env}
	return Basis{Basis: out, Syms: b.Syms}
}

func mergeInto(dst, src symbols.ValEnv) {
	for k, v := range src {
		dst[k] = v
	}
}

func boolTyInfo(store *strstore.StrStore, syms Syms) symbols.TyInfo {
	boolTy := typesystem.CtorTy{Sym: syms.Bool}
	ve := symbols.ValEnv{
		store.Intern("true"):  symbols.NewCtorInfo(typesystem.Mono(boolTy)),
		store.Intern("false"): symbols.NewCtorInfo(typesystem.Mono(boolTy)),
	}
	return symbols.TyInfo{TyFcn: typesystem.Mono(boolTy), ValEnv: ve}
}

func orderTyInfo(store *strstore.StrStore, syms Syms) symbols.TyInfo {
	orderTy := typesystem.CtorTy{Sym: syms.Order}
	ve := symbols.ValEnv{
		store.Intern("LESS"):    symbols.NewCtorInfo(typesystem.Mono(orderTy)),
		store.Intern("EQUAL"):   symbols.NewCtorInfo(typesystem.Mono(orderTy)),
		store.Intern("GREATER"): symbols.NewCtorInfo(typesystem.Mono(orderTy)),
	}
	return symbols.TyInfo{TyFcn: typesystem.Mono(orderTy), ValEnv: ve}
}

func listTyInfo(store *strstore.StrStore, syms Syms) symbols.TyInfo {
	a := typesystem.TyVar{ID: -3}
	listOfA := typesystem.CtorTy{Args: []typesystem.Ty{typesystem.VarTy{Var: a}}, Sym: syms.List}
	nilInfo := symbols.NewCtorInfo(typesystem.TyScheme{BoundVars: []typesystem.TyVar{a}, Body: listOfA})
	consInfo := symbols.NewCtorInfo(typesystem.TyScheme{
		BoundVars: []typesystem.TyVar{a},
		Body: typesystem.ArrowTy{
			Dom: tupleRecord(typesystem.VarTy{Var: a}, listOfA),
			Ran: listOfA,
		},
	})
	ve := symbols.ValEnv{
		store.Intern("nil"): nilInfo,
		store.Intern("::"):  consInfo,
	}
	return symbols.TyInfo{
		TyFcn:  typesystem.TyScheme{BoundVars: []typesystem.TyVar{a}, Body: listOfA},
		ValEnv: ve,
	}
}

func refTyInfo(store *strstore.StrStore, syms Syms) symbols.TyInfo {
	a := typesystem.TyVar{ID: -4}
	refOfA := typesystem.CtorTy{Args: []typesystem.Ty{typesystem.VarTy{Var: a}}, Sym: syms.Ref}
	refInfo := symbols.NewCtorInfo(typesystem.TyScheme{
		BoundVars: []typesystem.TyVar{a},
		Body:      typesystem.ArrowTy{Dom: typesystem.VarTy{Var: a}, Ran: refOfA},
	})
	ve := symbols.ValEnv{store.Intern("ref"): refInfo}
	return symbols.TyInfo{
		TyFcn:  typesystem.TyScheme{BoundVars: []typesystem.TyVar{a}, Body: refOfA},
		ValEnv: ve,
	}
}

func unaryOverload(v typesystem.TyVar, _ Syms) typesystem.Ty {
	return typesystem.ArrowTy{Dom: typesystem.VarTy{Var: v}, Ran: typesystem.VarTy{Var: v}}
}

func binaryOverload(v typesystem.TyVar, _ Syms) typesystem.Ty {
	return typesystem.ArrowTy{Dom: tupleRecord(typesystem.VarTy{Var: v}, typesystem.VarTy{Var: v}), Ran: typesystem.VarTy{Var: v}}
}

func binaryCmp(v typesystem.TyVar, syms Syms) typesystem.Ty {
	return typesystem.ArrowTy{
		Dom: tupleRecord(typesystem.VarTy{Var: v}, typesystem.VarTy{Var: v}),
		Ran: typesystem.CtorTy{Sym: syms.Bool},
	}
}

func addOverloaded(store *strstore.StrStore, ve symbols.ValEnv, name string, shape func(typesystem.TyVar, Syms) typesystem.Ty, syms Syms, candidates []typesystem.Sym) {
	v := typesystem.TyVar{ID: nextSyntheticID()}
	ve[store.Intern(name)] = symbols.NewValInfo(typesystem.TyScheme{
		BoundVars: []typesystem.TyVar{v},
		Body:      shape(v, syms),
		Overload:  candidates,
	})
}

var syntheticIDCounter = -100

func nextSyntheticID() int {
	syntheticIDCounter--
	return syntheticIDCounter
}
