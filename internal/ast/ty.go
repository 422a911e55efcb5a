package ast

import (
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
)

// Ty is a source-level type expression, as written after a `:` or in a
// `datatype` constructor argument.
type Ty interface {
	tyNode()
	Location() loc.Loc
}

type tyBase struct{ Loc loc.Loc }

func (t tyBase) Location() loc.Loc { return t.Loc }

// TyVarTy is a user-written `'a` / `''a`. §9 Open Question (ii): the
// context's type-variable set is never populated, so checking this
// always yields Todo.
type TyVarTy struct {
	tyBase
	Name strstore.ID
}

func (TyVarTy) tyNode() {}

// RecordTy is `{ l1 : ty1, ..., ln : tyn }`.
type RecordTy struct {
	tyBase
	Fields []RecordTyField
}

func (RecordTy) tyNode() {}

type RecordTyField struct {
	Label label.Label
	Ty    Ty
}

// TupleTy is `ty1 * ty2 * ... * tyn`.
type TupleTy struct {
	tyBase
	Elems []Ty
}

func (TupleTy) tyNode() {}

// ConTy is a type constructor application `(ty1, ..., tyn) name`; Args
// is empty for a nullary constructor reference like `int`.
type ConTy struct {
	tyBase
	Args []Ty
	Con  loc.Located[TyCon]
}

func (ConTy) tyNode() {}

// ArrowTy is `dom -> ran`.
type ArrowTy struct {
	tyBase
	Dom Ty
	Ran Ty
}

func (ArrowTy) tyNode() {}
