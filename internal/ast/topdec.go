package ast

import "github.com/vael-lang/vael/internal/loc"

// TopDec is a top-level declaration: a structure-level declaration
// (`StrDec`), a signature declaration, or a functor declaration. Only
// `StrDec::Dec` is implemented by the core; the rest are Todo.
type TopDec interface {
	topDecNode()
	Location() loc.Loc
}

type topDecBase struct{ Loc loc.Loc }

func (t topDecBase) Location() loc.Loc { return t.Loc }

// StrDecTopDec wraps a bare structure-level declaration at the top
// level, the only TopDec form the core checks.
type StrDecTopDec struct {
	topDecBase
	StrDec StrDec
}

func (StrDecTopDec) topDecNode() {}

// SigDecTopDec and FunDecTopDec are parsed but not handled by the core;
// CkTopDec reports them as Todo.

type SigDecTopDec struct{ topDecBase }

func (SigDecTopDec) topDecNode() {}

type FunDecTopDec struct{ topDecBase }

func (FunDecTopDec) topDecNode() {}

// StrDec is a structure-level declaration. `Dec` wraps a core
// declaration and is the only variant the core implements; `Structure`,
// `Local`, and `Seq` are Todo.
type StrDec interface {
	strDecNode()
	Location() loc.Loc
}

type strDecBase struct{ Loc loc.Loc }

func (s strDecBase) Location() loc.Loc { return s.Loc }

// DecStrDec wraps a core Dec as a structure-level declaration.
type DecStrDec struct {
	strDecBase
	Dec Dec
}

func (DecStrDec) strDecNode() {}

type StructureStrDec struct{ strDecBase }

func (StructureStrDec) strDecNode() {}

type LocalStrDec struct{ strDecBase }

func (LocalStrDec) strDecNode() {}

type SeqStrDec struct {
	strDecBase
	StrDecs []StrDec
}

func (SeqStrDec) strDecNode() {}
