package typesystem

import (
	"github.com/google/uuid"

	"github.com/vael-lang/vael/internal/strstore"
)

// Origin is an opaque generative tag. Primitive base types carry no
// origin (the zero Origin); a type introduced by a user `datatype`
// declaration is stamped with a fresh one, so nominal identity is
// decided by the origin, not by re-using the declared name.
//
// A random origin, rather than a sequential counter, means a Sym never
// needs the State threaded through every call site that only wants to
// compare two type heads for identity — any two callers minting an
// origin independently still can't collide.
type Origin struct {
	id   uuid.UUID
	real bool
}

// NewOrigin mints a fresh origin tag, distinct from every other one ever
// minted.
func NewOrigin() Origin {
	return Origin{id: uuid.New(), real: true}
}

func (o Origin) eq(other Origin) bool {
	if o.real != other.real {
		return false
	}
	if !o.real {
		return true // both are the no-origin zero value
	}
	return o.id == other.id
}

// Sym is a generated type-constructor symbol: an interned name plus an
// optional origin. Two Syms are equal iff both name and origin match.
type Sym struct {
	Name   strstore.ID
	Origin Origin
}

// NewSym builds a Sym with no origin, for primitive base types.
func NewSym(name strstore.ID) Sym {
	return Sym{Name: name}
}

// NewGeneratedSym builds a Sym with a fresh origin, for a type
// introduced by a `datatype` binding.
func NewGeneratedSym(name strstore.ID) Sym {
	return Sym{Name: name, Origin: NewOrigin()}
}

// Eq reports whether two Syms denote the same type constructor.
func (s Sym) Eq(other Sym) bool {
	return s.Name == other.Name && s.Origin.eq(other.Origin)
}
