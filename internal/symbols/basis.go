package symbols

import "github.com/vael-lang/vael/internal/typesystem"

// Sig and FunSig are placeholders for module-level elaboration
// (signatures and functor signatures). Nothing in this engine produces
// or consumes one yet; module-level declarations are Todo (§4.7).
type Sig struct{}
type FunSig struct{}

// SigEnv and FunEnv map names to the (currently uninhabited) module-
// level signature/functor placeholders above.
type SigEnv map[string]Sig
type FunEnv map[string]FunSig

// Basis is the top-level environment: the set of in-scope type names,
// the module-level environments, and the flattened value/type/structure
// environment.
type Basis struct {
	TyNames map[typesystem.Sym]struct{}
	FunEnv  FunEnv
	SigEnv  SigEnv
	Env     Env
}

// NewBasis returns an empty basis, the starting point before
// StandardBasis seeds it.
func NewBasis() Basis {
	return Basis{
		TyNames: map[typesystem.Sym]struct{}{},
		FunEnv:  FunEnv{},
		SigEnv:  SigEnv{},
		Env:     NewEnv(),
	}
}

// Extend grows the basis with env's bindings and type names, as
// CkTopDec does after elaborating a top-level declaration.
func (b Basis) Extend(env Env) Basis {
	out := b
	out.Env = b.Env.Extend(env)
	out.TyNames = make(map[typesystem.Sym]struct{}, len(b.TyNames))
	for s := range b.TyNames {
		out.TyNames[s] = struct{}{}
	}
	for name := range env.TypeNames() {
		out.TyNames[name] = struct{}{}
	}
	return out
}
