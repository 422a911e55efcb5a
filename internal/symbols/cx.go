package symbols

import "github.com/vael-lang/vael/internal/typesystem"

// Cx is the context: the environment flattened into a lexical scope,
// plus the ambient set of type-constructor names currently in scope (T)
// and the set of user-introduced type variables currently in scope (U,
// reserved — see the analyzer's CkTy handling of ast.TyVarTy).
type Cx struct {
	TyNames map[typesystem.Sym]struct{}
	TyVars  map[int]typesystem.TyVar
	Env     Env
}

// NewCx builds a context from a basis: every type name the basis
// currently knows about, and its flattened environment.
func NewCx(basis Basis) Cx {
	tyNames := make(map[typesystem.Sym]struct{}, len(basis.TyNames))
	for s := range basis.TyNames {
		tyNames[s] = struct{}{}
	}
	return Cx{TyNames: tyNames, TyVars: map[int]typesystem.TyVar{}, Env: basis.Env}
}

// Clone returns an independent copy, used before extending a context
// within a nested scope (e.g. for a `let` or a `datatype` group) so the
// caller's own Cx is unaffected.
func (c Cx) Clone() Cx {
	tyNames := make(map[typesystem.Sym]struct{}, len(c.TyNames))
	for s := range c.TyNames {
		tyNames[s] = struct{}{}
	}
	tyVars := make(map[int]typesystem.TyVar, len(c.TyVars))
	for k, v := range c.TyVars {
		tyVars[k] = v
	}
	// Extend with an empty Env to get fresh StrEnv/TyEnv/ValEnv maps, so
	// mutating the clone's Env (e.g. inserting a datatype's TyInfo
	// in-progress) never aliases the original's maps.
	return Cx{TyNames: tyNames, TyVars: tyVars, Env: c.Env.Extend(NewEnv())}
}

// OPlus extends the context's environment with env, right-biased, and
// unions env's type names into T.
func (c Cx) OPlus(env Env) Cx {
	out := c.Clone()
	out.Env = out.Env.Extend(env)
	for name := range env.TypeNames() {
		out.TyNames[name] = struct{}{}
	}
	return out
}
