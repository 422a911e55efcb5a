package typesystem

import "github.com/vael-lang/vael/internal/strstore"

// PrimSym interns name and wraps it as a no-origin Sym, the identity
// every reference to a given primitive type constructor shares (since
// two no-origin Syms compare equal iff their names match).
func PrimSym(store *strstore.StrStore, name string) Sym {
	return NewSym(store.Intern(name))
}

// Prim is a nullary reference to the primitive type constructor name,
// e.g. Prim(store, "int").
func Prim(store *strstore.StrStore, name string) Ty {
	return CtorTy{Sym: PrimSym(store, name)}
}
