package ast

import "github.com/vael-lang/vael/internal/loc"

// Dec is a declaration.
type Dec interface {
	decNode()
	Location() loc.Loc
}

type decBase struct{ Loc loc.Loc }

func (d decBase) Location() loc.Loc { return d.Loc }

// ValDec is `val b1 and b2 and ... and bn`. The source language this
// engine checks has no `rec`; every binding is non-recursive.
type ValDec struct {
	decBase
	Bindings []ValBind
}

func (ValDec) decNode() {}

type ValBind struct {
	Pat  Pat
	Expr Expr
}

// TypeDec is `type b1 and b2 and ... and bn`, a type synonym group.
// Bound type variables on the left-hand side are not supported (§9 Open
// Question (ii)); bindings are monomorphic.
type TypeDec struct {
	decBase
	Bindings []TypeBind
}

func (TypeDec) decNode() {}

type TypeBind struct {
	TyCon loc.Located[TyCon]
	Ty    Ty
}

// DatatypeDec is `datatype d1 and d2 and ... and dn`, a mutually
// recursive group of algebraic datatype declarations.
type DatatypeDec struct {
	decBase
	Bindings []DatatypeBind
}

func (DatatypeDec) decNode() {}

type DatatypeBind struct {
	TyCon loc.Located[TyCon]
	Ctors []CtorBind
}

type CtorBind struct {
	VId loc.Located[VId]
	Arg Ty // nil if the constructor takes no argument
}

// SeqDec is `d1; d2; ...; dn`; later bindings see earlier ones.
type SeqDec struct {
	decBase
	Decs []Dec
}

func (SeqDec) decNode() {}

// FixityKind distinguishes the three fixity-declaration forms, which are
// ignored for typing (they only affect how the parser shapes infix
// application before the checker ever sees it).
type FixityKind int

const (
	FixityInfix FixityKind = iota
	FixityInfixr
	FixityNonfix
)

// FixityDec is `infix`/`infixr`/`nonfix`.
type FixityDec struct {
	decBase
	Kind FixityKind
	VIds []loc.Located[VId]
}

func (FixityDec) decNode() {}

// FunDec, ExceptionDec, DatatypeCopyDec, AbstypeDec, LocalDec are parsed
// but not handled by the core; CkDec reports them as Todo.

type FunDec struct{ decBase }

func (FunDec) decNode() {}

type ExceptionDec struct{ decBase }

func (ExceptionDec) decNode() {}

type DatatypeCopyDec struct{ decBase }

func (DatatypeCopyDec) decNode() {}

type AbstypeDec struct{ decBase }

func (AbstypeDec) decNode() {}

type LocalDec struct{ decBase }

func (LocalDec) decNode() {}

type OpenDec struct{ decBase }

func (OpenDec) decNode() {}
