// Package ast is the AST surface the checker consumes: expressions,
// patterns, source-type expressions, declarations, and long identifiers,
// parameterized over strstore.ID for names and carrying loc.Loc on every
// node that can produce a diagnostic.
//
// Building these trees (lexing, parsing) is out of scope; this package
// only defines the shapes the Inferencer walks.
package ast

import (
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
)

// VId, TyCon and StrId are all just interned names; the checker tells
// them apart by which environment it looks them up in, not by a tag on
// the identifier itself.
type VId = strstore.ID
type TyCon = strstore.ID
type StrId = strstore.ID

// LongVId is a value identifier possibly qualified by a path of
// structure identifiers, e.g. `S.T.x`.
type LongVId struct {
	StrIds []loc.Located[StrId]
	VId    loc.Located[VId]
}

// Simple reports whether this long identifier has no structure
// qualifiers, i.e. is a bare `x`.
func (l LongVId) Simple() bool { return len(l.StrIds) == 0 }
