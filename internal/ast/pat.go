package ast

import (
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
)

// Pat is a pattern.
type Pat interface {
	patNode()
	Location() loc.Loc
}

type patBase struct{ Loc loc.Loc }

func (p patBase) Location() loc.Loc { return p.Loc }

// WildcardPat is `_`.
type WildcardPat struct{ patBase }

func (WildcardPat) patNode() {}

// SConPat is a special-constant pattern: a literal.
type SConPat struct {
	patBase
	Lit Lit
}

func (SConPat) patNode() {}

// LongVIdPat is a bare or qualified identifier in pattern position. It
// denotes a constructor/exception application target when the final
// identifier has non-Val status in scope. Otherwise a bare identifier is
// a fresh variable binder and a qualified one is rejected; the checker,
// not the parser, tells these apart.
type LongVIdPat struct {
	patBase
	Op  bool
	Id  LongVId
}

func (LongVIdPat) patNode() {}

// RecordPat is `{ l1 = p1, ..., ln = pn }`.
type RecordPat struct {
	patBase
	Fields []RecordPatField
}

func (RecordPat) patNode() {}

type RecordPatField struct {
	Label label.Label
	Pat   Pat
}

// TuplePat is `(p1, ..., pn)`.
type TuplePat struct {
	patBase
	Elems []Pat
}

func (TuplePat) patNode() {}

// ListPat is `[p1, ..., pn]`.
type ListPat struct {
	patBase
	Elems []Pat
}

func (ListPat) patNode() {}

// CtorPat is `vid pat`, a constructor applied to an argument pattern.
type CtorPat struct {
	patBase
	Ctor LongVId
	Arg  Pat
}

func (CtorPat) patNode() {}

// InfixCtorPat is `p1 vid p2`, sugar for a constructor applied to the
// 2-tuple (p1, p2).
type InfixCtorPat struct {
	patBase
	Left  Pat
	Ctor  loc.Located[VId]
	Right Pat
}

func (InfixCtorPat) patNode() {}

// TypedPat is `pat : ty`.
type TypedPat struct {
	patBase
	Pat Pat
	Ty  Ty
}

func (TypedPat) patNode() {}

// AsPat is `vid (: ty)? as pat`.
type AsPat struct {
	patBase
	VId loc.Located[VId]
	Ty  Ty // nil if no type ascription
	Pat Pat
}

func (AsPat) patNode() {}
