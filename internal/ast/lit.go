package ast

import "github.com/vael-lang/vael/internal/strstore"

// LitKind tags a special-constant literal.
type LitKind int

const (
	LitDecInt LitKind = iota
	LitHexInt
	LitDecWord
	LitHexWord
	LitReal
	LitStr
	LitChar
)

// Lit is a special constant: an integer, word, real, string, or
// character literal. The lexical form (decimal vs hex) only matters to
// the front end; the checker only cares about LitKind's primitive type.
type Lit struct {
	Kind LitKind
	Int  int64       // DecInt, HexInt, DecWord, HexWord
	Real float64     // Real
	Str  strstore.ID // Str
	Char byte        // Char
}
