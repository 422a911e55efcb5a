// Package diagnostics is the checker's error taxonomy and rendering: a
// stable code and phase per error kind, a located message, grounded on
// the sibling funxy tree's DiagnosticError (code + phase + location +
// message template).
package diagnostics

import (
	"fmt"

	"github.com/vael-lang/vael/internal/checkstate"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

// Phase is always PhaseCheck for this engine; the field exists so the
// rendering matches the sibling tree's multi-phase format even though
// this package only ever runs one phase.
type Phase string

const PhaseCheck Phase = "check"

// Code is a stable error-code string, one per diagnostic kind.
type Code string

const (
	CodeUndefined         Code = "T001"
	CodeRedefined         Code = "T002"
	CodeDuplicateLabel    Code = "T003"
	CodeCircularity       Code = "T004"
	CodeHeadMismatch      Code = "T005"
	CodeMissingLabel      Code = "T006"
	CodeValAsPat          Code = "T007"
	CodeWrongNumTyArgs    Code = "T008"
	CodeNonVarInAs        Code = "T009"
	CodeForbiddenBinding  Code = "T010"
	CodeNoSuitableOverload Code = "T011"
	CodeTyNameEscape      Code = "T012"
	CodeTodo              Code = "T013"
)

// Error is a single located diagnostic: the first (and only) rejected
// construct in the pass that produced it.
type Error struct {
	Code    Code
	Phase   Phase
	Loc     loc.Loc
	File    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: [%s] error at %s [%s]: %s", e.File, e.Phase, e.Loc, e.Code, e.Message)
}

func itemName(item symbols.Item) string {
	switch item {
	case symbols.ItemValue:
		return "value"
	case symbols.ItemType:
		return "type"
	case symbols.ItemStructure:
		return "structure"
	case symbols.ItemSignature:
		return "signature"
	case symbols.ItemFunctor:
		return "functor"
	default:
		return "identifier"
	}
}

func newError(l loc.Loc, code Code, message string) *Error {
	return &Error{Code: code, Phase: PhaseCheck, Loc: l, Message: message}
}

// NewUndefined renders `undefined <item> identifier: <name>`.
func NewUndefined(l loc.Loc, store *strstore.StrStore, item symbols.Item, name strstore.ID) *Error {
	return newError(l, CodeUndefined, fmt.Sprintf("undefined %s identifier: %s", itemName(item), store.Lookup(name)))
}

// NewRedefined renders `redefined identifier: <name>`.
func NewRedefined(l loc.Loc, store *strstore.StrStore, name strstore.ID) *Error {
	return newError(l, CodeRedefined, fmt.Sprintf("redefined identifier: %s", store.Lookup(name)))
}

// NewDuplicateLabel renders `duplicate label: <label>`.
func NewDuplicateLabel(l loc.Loc, store *strstore.StrStore, lab label.Label) *Error {
	return newError(l, CodeDuplicateLabel, fmt.Sprintf("duplicate label: %s", lab.String(store)))
}

// NewValAsPat renders `value binding used as pattern`.
func NewValAsPat(l loc.Loc) *Error {
	return newError(l, CodeValAsPat, "value binding used as pattern")
}

// NewWrongNumTyArgs renders `wrong number of type arguments: expected
// <n>, found <m>`.
func NewWrongNumTyArgs(l loc.Loc, want, got int) *Error {
	return newError(l, CodeWrongNumTyArgs, fmt.Sprintf("wrong number of type arguments: expected %d, found %d", want, got))
}

// NewNonVarInAs renders `pattern to left of \`as\` is not a variable:
// <name>`.
func NewNonVarInAs(l loc.Loc, store *strstore.StrStore, name strstore.ID) *Error {
	return newError(l, CodeNonVarInAs, fmt.Sprintf("pattern to left of `as` is not a variable: %s", store.Lookup(name)))
}

// NewForbiddenBinding renders `forbidden identifier in binding: <name>`.
func NewForbiddenBinding(l loc.Loc, store *strstore.StrStore, name strstore.ID) *Error {
	return newError(l, CodeForbiddenBinding, fmt.Sprintf("forbidden identifier in binding: %s", store.Lookup(name)))
}

// NewTodo renders `unimplemented language construct`.
func NewTodo(l loc.Loc) *Error {
	return newError(l, CodeTodo, "unimplemented language construct")
}

// FromUnifyError turns a typesystem.UnifyError into a located
// diagnostic: Circularity, HeadMismatch, or MissingLabel.
func FromUnifyError(l loc.Loc, store *strstore.StrStore, err *typesystem.UnifyError) *Error {
	code := CodeHeadMismatch
	switch err.Kind {
	case typesystem.ErrCircularity:
		code = CodeCircularity
	case typesystem.ErrMissingLabel:
		code = CodeMissingLabel
	}
	return newError(l, code, err.Render(store))
}

// FromSolveError turns a checkstate.SolveError into NoSuitableOverload
// or TyNameEscape.
func FromSolveError(err *checkstate.SolveError) *Error {
	if err.Overload {
		return newError(err.Loc, CodeNoSuitableOverload, "no suitable overload found")
	}
	return newError(err.Loc, CodeTyNameEscape, "expression causes a type name to escape its scope")
}

// FromSymbolsError turns symbols.RedefinedError/UndefinedError into a
// located diagnostic.
func FromSymbolsError(l loc.Loc, store *strstore.StrStore, err error) *Error {
	switch e := err.(type) {
	case *symbols.RedefinedError:
		return NewRedefined(l, store, e.Name)
	case *symbols.UndefinedError:
		return NewUndefined(l, store, e.Item, e.Name)
	default:
		return newError(l, CodeTodo, err.Error())
	}
}
