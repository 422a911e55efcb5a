// Package label defines record/tuple field labels, shared by the AST
// (source-level record and tuple syntax) and the type algebra (record
// type fields), exactly as the two line up in the source language: a
// tuple of arity n elaborates to a record with labels 1..n.
package label

import (
	"fmt"

	"github.com/vael-lang/vael/internal/strstore"
)

// Kind distinguishes a named label from a numeric (tuple) one.
type Kind int

const (
	Ident Kind = iota
	Num
)

// Label is either an interned identifier or a positive integer.
type Label struct {
	Kind Kind
	ID   strstore.ID // valid when Kind == Ident
	N    int         // valid when Kind == Num, 1-based
}

// OfIdent builds an identifier label.
func OfIdent(id strstore.ID) Label { return Label{Kind: Ident, ID: id} }

// OfNum builds a 1-based numeric label, as used for tuple component i
// (0-based) which elaborates to label i+1.
func OfNum(n int) Label { return Label{Kind: Num, N: n} }

// Tuple returns the label for 0-based tuple component i.
func Tuple(i int) Label { return OfNum(i + 1) }

// Eq reports whether two labels denote the same field.
func (l Label) Eq(other Label) bool {
	if l.Kind != other.Kind {
		return false
	}
	if l.Kind == Ident {
		return l.ID == other.ID
	}
	return l.N == other.N
}

// String renders a label for diagnostics: the decimal form for a
// numeric label, the identifier text looked up in store otherwise.
func (l Label) String(store *strstore.StrStore) string {
	if l.Kind == Num {
		return fmt.Sprintf("%d", l.N)
	}
	return store.Lookup(l.ID)
}
