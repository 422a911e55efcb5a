package ast

import (
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
)

// Expr is an expression.
type Expr interface {
	exprNode()
	Location() loc.Loc
}

type exprBase struct{ Loc loc.Loc }

func (e exprBase) Location() loc.Loc { return e.Loc }

// SConExpr is a special-constant literal.
type SConExpr struct {
	exprBase
	Lit Lit
}

func (SConExpr) exprNode() {}

// LongVIdExpr is a (possibly qualified) value-identifier reference.
type LongVIdExpr struct {
	exprBase
	Op bool
	Id LongVId
}

func (LongVIdExpr) exprNode() {}

// RecordExpr is `{ l1 = e1, ..., ln = en }`.
type RecordExpr struct {
	exprBase
	Fields []RecordExprField
}

func (RecordExpr) exprNode() {}

type RecordExprField struct {
	Label label.Label
	Expr  Expr
}

// SelectExpr is `#l e`, record field projection. Not implemented by the
// core (Todo); kept in the AST since the parser can still produce it.
type SelectExpr struct {
	exprBase
	Label label.Label
	Expr  Expr
}

func (SelectExpr) exprNode() {}

// TupleExpr is `(e1, ..., en)`.
type TupleExpr struct {
	exprBase
	Elems []Expr
}

func (TupleExpr) exprNode() {}

// ListExpr is `[e1, ..., en]`.
type ListExpr struct {
	exprBase
	Elems []Expr
}

func (ListExpr) exprNode() {}

// SequenceExpr is `(e1; e2; ...; en)`; its type is the type of the last
// component.
type SequenceExpr struct {
	exprBase
	Elems []Expr
}

func (SequenceExpr) exprNode() {}

// LetExpr is `let dec in e1; ...; en end`.
type LetExpr struct {
	exprBase
	Dec   Dec
	Elems []Expr
}

func (LetExpr) exprNode() {}

// AppExpr is `func arg`.
type AppExpr struct {
	exprBase
	Func Expr
	Arg  Expr
}

func (AppExpr) exprNode() {}

// InfixAppExpr is `lhs vid rhs`, sugar for `vid (lhs, rhs)`.
type InfixAppExpr struct {
	exprBase
	Left  Expr
	VId   loc.Located[VId]
	Right Expr
}

func (InfixAppExpr) exprNode() {}

// TypedExpr is `e : ty`.
type TypedExpr struct {
	exprBase
	Expr Expr
	Ty   Ty
}

func (TypedExpr) exprNode() {}

// AndalsoExpr is `e1 andalso e2`.
type AndalsoExpr struct {
	exprBase
	Left  Expr
	Right Expr
}

func (AndalsoExpr) exprNode() {}

// OrelseExpr is `e1 orelse e2`.
type OrelseExpr struct {
	exprBase
	Left  Expr
	Right Expr
}

func (OrelseExpr) exprNode() {}

// HandleExpr is `e handle match`.
type HandleExpr struct {
	exprBase
	Expr  Expr
	Cases []Case
}

func (HandleExpr) exprNode() {}

// RaiseExpr is `raise e`.
type RaiseExpr struct {
	exprBase
	Expr Expr
}

func (RaiseExpr) exprNode() {}

// IfExpr is `if c then t else f`.
type IfExpr struct {
	exprBase
	Cond Expr
	Then Expr
	Else Expr
}

func (IfExpr) exprNode() {}

// WhileExpr is `while c do body`. Not implemented by the core (Todo).
type WhileExpr struct {
	exprBase
	Cond Expr
	Body Expr
}

func (WhileExpr) exprNode() {}

// CaseExpr is `case e of match`.
type CaseExpr struct {
	exprBase
	Expr  Expr
	Cases []Case
}

func (CaseExpr) exprNode() {}

// FnExpr is `fn match`.
type FnExpr struct {
	exprBase
	Cases []Case
}

func (FnExpr) exprNode() {}

// Case is one `pat => exp` arm of a match.
type Case struct {
	Pat  Pat
	Expr Expr
}
