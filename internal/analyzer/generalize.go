package analyzer

import (
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

// freeVarsEnv is the union of free type variables over every value
// binding's scheme currently in scope, i.e. free_vars(TyEnv) in the
// sense §4.7's Generalize uses it (the ambient ValEnv, not the TyEnv
// type — a generalizable binding must not capture a variable still
// free somewhere else in the enclosing environment).
func freeVarsEnv(env symbols.Env) map[int]typesystem.TyVar {
	out := map[int]typesystem.TyVar{}
	for _, info := range env.ValEnv {
		for id, v := range typesystem.FreeVarsScheme(info.Scheme) {
			out[id] = v
		}
	}
	for _, sub := range env.StrEnv {
		for id, v := range freeVarsEnv(sub) {
			out[id] = v
		}
	}
	return out
}

// Generalize closes t into a scheme, quantifying every free variable of
// t that is not free in env. It is available but unused by the
// declaration forms this engine currently implements (§4.7): none of
// Val, Type, or Datatype calls it, since none of them introduce
// polymorphic bindings from an inferred body.
func Generalize(env symbols.Env, t typesystem.Ty) typesystem.TyScheme {
	envFree := freeVarsEnv(env)
	tFree := typesystem.FreeVars(t)
	var bound []typesystem.TyVar
	for id, v := range tFree {
		if _, inEnv := envFree[id]; !inEnv {
			bound = append(bound, v)
		}
	}
	return typesystem.TyScheme{BoundVars: bound, Body: t}
}
