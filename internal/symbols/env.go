// Package symbols is the Environments component: the scope-table types
// (StrEnv, TyEnv, ValEnv, Env), the context Cx, and the Basis, plus the
// lookup and merge operations the Inferencer drives them with.
package symbols

import (
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/typesystem"
)

// IdStatus controls whether a long identifier in pattern position is a
// datatype constructor, an exception constructor, or a plain variable.
type IdStatus int

const (
	Val IdStatus = iota
	Ctor
	Exn
)

// ValInfo is what a value identifier resolves to: its scheme and its
// status.
type ValInfo struct {
	Scheme typesystem.TyScheme
	Status IdStatus
}

// NewValInfo builds the ValInfo for an ordinary (non-constructor,
// non-exception) binding. The original this engine is grounded on marks
// this case Ctor, which every call site that isn't itself constructing
// a constructor treats as a bug; this constructor produces Val status,
// per that correction.
func NewValInfo(scheme typesystem.TyScheme) ValInfo {
	return ValInfo{Scheme: scheme, Status: Val}
}

// NewCtorInfo builds the ValInfo for a datatype constructor.
func NewCtorInfo(scheme typesystem.TyScheme) ValInfo {
	return ValInfo{Scheme: scheme, Status: Ctor}
}

// NewExnInfo builds the ValInfo for an exception constructor.
func NewExnInfo(scheme typesystem.TyScheme) ValInfo {
	return ValInfo{Scheme: scheme, Status: Exn}
}

// ValEnv maps value identifiers to their ValInfo.
type ValEnv map[strstore.ID]ValInfo

// TyInfo is what a type constructor resolves to: its type function
// (arity plus expansion, expressed as a TyScheme whose bound variables
// are substituted positionally rather than freshly instantiated) and
// the value environment of its constructors, if it is a datatype.
type TyInfo struct {
	TyFcn  typesystem.TyScheme
	ValEnv ValEnv
}

// Arity is the number of type parameters this type constructor takes.
func (t TyInfo) Arity() int { return len(t.TyFcn.BoundVars) }

// Expand applies this type function to concrete arguments, substituting
// them positionally for the bound variables. Callers must supply
// exactly Arity() arguments.
func (t TyInfo) Expand(args []typesystem.Ty) typesystem.Ty {
	if len(t.TyFcn.BoundVars) == 0 {
		return t.TyFcn.Body
	}
	s := typesystem.NewSubst()
	for i, bv := range t.TyFcn.BoundVars {
		s[bv.ID] = args[i]
	}
	return typesystem.Apply(s, t.TyFcn.Body)
}

// TyEnv maps type constructors to their TyInfo.
type TyEnv map[strstore.ID]TyInfo

// StrEnv maps structure identifiers to their Env.
type StrEnv map[strstore.ID]Env

// Env is a lexical scope: structures, types, and values in it.
type Env struct {
	StrEnv StrEnv
	TyEnv  TyEnv
	ValEnv ValEnv
}

// NewEnv returns an empty environment.
func NewEnv() Env {
	return Env{StrEnv: StrEnv{}, TyEnv: TyEnv{}, ValEnv: ValEnv{}}
}

// Extend performs a right-biased override: every binding in other
// replaces any binding of the same name in e, per sub-environment.
func (e Env) Extend(other Env) Env {
	out := Env{
		StrEnv: make(StrEnv, len(e.StrEnv)+len(other.StrEnv)),
		TyEnv:  make(TyEnv, len(e.TyEnv)+len(other.TyEnv)),
		ValEnv: make(ValEnv, len(e.ValEnv)+len(other.ValEnv)),
	}
	for k, v := range e.StrEnv {
		out.StrEnv[k] = v
	}
	for k, v := range other.StrEnv {
		out.StrEnv[k] = v
	}
	for k, v := range e.TyEnv {
		out.TyEnv[k] = v
	}
	for k, v := range other.TyEnv {
		out.TyEnv[k] = v
	}
	for k, v := range e.ValEnv {
		out.ValEnv[k] = v
	}
	for k, v := range other.ValEnv {
		out.ValEnv[k] = v
	}
	return out
}

// TypeNames returns the set of generated Syms that this environment's
// TyInfos (directly, and via the bodies they expand to) make visible:
// one entry per TyEnv binding's own symbol, keyed by the Sym the TyInfo
// expands a nullary reference to. Used by Cx.OPlus to grow the in-scope
// type-name set.
func (e Env) TypeNames() map[typesystem.Sym]struct{} {
	out := map[typesystem.Sym]struct{}{}
	for _, info := range e.TyEnv {
		if len(info.TyFcn.BoundVars) == 0 {
			if sym, ok := symOf(info.TyFcn.Body); ok {
				out[sym] = struct{}{}
			}
		}
		for name := range typesystem.TypeNames(info.TyFcn.Body) {
			out[name] = struct{}{}
		}
	}
	for _, sub := range e.StrEnv {
		for name := range sub.TypeNames() {
			out[name] = struct{}{}
		}
	}
	return out
}

func symOf(t typesystem.Ty) (typesystem.Sym, bool) {
	if c, ok := t.(typesystem.CtorTy); ok {
		return c.Sym, true
	}
	return typesystem.Sym{}, false
}
