package typesystem

import (
	"testing"

	"github.com/vael-lang/vael/internal/strstore"
)

func TestFreeVarsSchemeExcludesBoundVars(t *testing.T) {
	bound := TyVar{ID: 1}
	free := TyVar{ID: 2}
	scheme := TyScheme{
		BoundVars: []TyVar{bound},
		Body:      ArrowTy{Dom: VarTy{Var: bound}, Ran: VarTy{Var: free}},
	}
	fv := FreeVarsScheme(scheme)
	if _, ok := fv[1]; ok {
		t.Errorf("bound variable leaked into FreeVarsScheme: %v", fv)
	}
	if _, ok := fv[2]; !ok {
		t.Errorf("free variable missing from FreeVarsScheme: %v", fv)
	}
}

func TestApplySchemeMasksBoundVars(t *testing.T) {
	bound := TyVar{ID: 1}
	scheme := TyScheme{BoundVars: []TyVar{bound}, Body: VarTy{Var: bound}}

	store := strstore.New()
	subst := Subst{1: Prim(store, "int")}
	out := ApplyScheme(subst, scheme)

	if _, ok := out.Body.(VarTy); !ok {
		t.Errorf("ApplyScheme substituted a bound variable; body = %v, want unchanged VarTy", out.Body)
	}
}

func TestMonoHasNoBoundVars(t *testing.T) {
	store := strstore.New()
	s := Mono(Prim(store, "int"))
	if len(s.BoundVars) != 0 {
		t.Errorf("Mono scheme has bound vars: %v", s.BoundVars)
	}
	if s.IsOverloaded() {
		t.Errorf("Mono scheme should not be overloaded")
	}
}
