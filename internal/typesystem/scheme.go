package typesystem

// TyScheme is a type scheme: quantified bound variables, a body type,
// and an optional overload set. The overload set, when present, is a
// non-empty list of primitive Syms naming the candidates; it appears
// only on schemes with exactly one bound, non-equality type variable
// (the built-in overloaded operators).
type TyScheme struct {
	BoundVars []TyVar
	Body      Ty
	Overload  []Sym // nil unless this scheme is overloaded
}

// Mono wraps a type with no bound variables, the scheme of a
// non-polymorphic binding.
func Mono(t Ty) TyScheme {
	return TyScheme{Body: t}
}

// IsOverloaded reports whether this scheme carries an overload set.
func (s TyScheme) IsOverloaded() bool { return len(s.Overload) > 0 }

// applyMasked masks the substitution at the bound variables before recursing
// into the body, so instantiated occurrences of the scheme's own bound
// variables elsewhere in s never leak in.
func (s TyScheme) applyMasked(subst Subst) Ty {
	if len(s.BoundVars) == 0 {
		return Apply(subst, s.Body)
	}
	masked := make(Subst, len(subst))
	for k, v := range subst {
		masked[k] = v
	}
	for _, bv := range s.BoundVars {
		delete(masked, bv.ID)
	}
	return Apply(masked, s.Body)
}

// ApplyScheme rewrites a scheme's body under a substitution, masking
// out the scheme's own bound variables first.
func ApplyScheme(subst Subst, s TyScheme) TyScheme {
	return TyScheme{BoundVars: s.BoundVars, Body: s.applyMasked(subst), Overload: s.Overload}
}

// FreeVarsScheme is free_vars(body) minus the bound variables.
func FreeVarsScheme(s TyScheme) map[int]TyVar {
	fv := FreeVars(s.Body)
	for _, bv := range s.BoundVars {
		delete(fv, bv.ID)
	}
	return fv
}
