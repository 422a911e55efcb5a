package analyzer

import (
	"testing"

	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

func TestCkPatWildcardProducesFreshVarAndNoBindings(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	_, ve, err := inf.CkPat(cx, ast.WildcardPat{})
	if err != nil {
		t.Fatalf("CkPat() error = %v", err)
	}
	if len(ve) != 0 {
		t.Errorf("CkPat(_) bindings = %v, want none", ve)
	}
}

func TestCkPatBareIdentifierBindsFreshVariable(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	_, ve, err := inf.CkPat(cx, simpleVarPat(store, "x"))
	if err != nil {
		t.Fatalf("CkPat() error = %v", err)
	}
	info, ok := ve[store.Intern("x")]
	if !ok || info.Status != symbols.Val {
		t.Fatalf("CkPat(x) = %v, want a Val binding for x", ve)
	}
}

func TestCkPatConstructorIdentifierResolvesInsteadOfBinding(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	ty, ve, err := inf.CkPat(cx, simpleVarPat(store, "true"))
	if err != nil {
		t.Fatalf("CkPat() error = %v", err)
	}
	if len(ve) != 0 {
		t.Errorf("CkPat(true) bindings = %v, want none (constructor reference, not a binder)", ve)
	}
	if typesystem.String(ty, store) != "bool" {
		t.Errorf("CkPat(true) = %v, want bool", ty)
	}
}

func TestCkPatTupleMergesBindingsAndRejectsDuplicates(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	tup := ast.TuplePat{Elems: []ast.Pat{simpleVarPat(store, "x"), simpleVarPat(store, "x")}}
	_, _, err := inf.CkPat(cx, tup)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeRedefined {
		t.Fatalf("CkPat() error = %v, want CodeRedefined (x bound twice)", err)
	}
}

func TestCkPatListUnifiesElementTypesAndMergesBindings(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	list := ast.ListPat{Elems: []ast.Pat{simpleVarPat(store, "x"), ast.SConPat{Lit: ast.Lit{Kind: ast.LitDecInt}}}}
	ty, ve, err := inf.CkPat(cx, list)
	if err != nil {
		t.Fatalf("CkPat() error = %v", err)
	}
	xInfo := ve[store.Intern("x")]
	if typesystem.String(xInfo.Scheme.Body, store) != "int" {
		t.Errorf("x unified to %v, want int (shared with the int literal element)", xInfo.Scheme.Body)
	}
	ctor, ok := ty.(typesystem.CtorTy)
	if !ok || ctor.Sym.Name != store.Intern("list") {
		t.Fatalf("CkPat(list) type = %v, want list", ty)
	}
}

func TestCkPatCtorAppliesConstructorToArgument(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	ctor := ast.CtorPat{
		Ctor: ast.LongVId{VId: loc.At(loc.Nowhere, store.Intern("ref"))},
		Arg:  ast.SConPat{Lit: ast.Lit{Kind: ast.LitDecInt}},
	}
	ty, _, err := inf.CkPat(cx, ctor)
	if err != nil {
		t.Fatalf("CkPat() error = %v", err)
	}
	got, ok := ty.(typesystem.CtorTy)
	if !ok || got.Sym.Name != store.Intern("ref") {
		t.Fatalf("CkPat(ref pat) = %v, want a ref type", ty)
	}
	if typesystem.String(got.Args[0], store) != "int" {
		t.Errorf("ref argument = %v, want int", got.Args[0])
	}
}

func TestCkPatCtorRejectsValueUsedAsConstructor(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	// "abs" is an ordinary (overloaded) value binding, not a Ctor, so it
	// cannot head a constructor pattern.
	ctor := ast.CtorPat{
		Ctor: ast.LongVId{VId: loc.At(loc.Nowhere, store.Intern("abs"))},
		Arg:  ast.SConPat{Lit: ast.Lit{Kind: ast.LitDecInt}},
	}
	_, _, err := inf.CkPat(cx, ctor)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeValAsPat {
		t.Fatalf("CkPat() error = %v, want CodeValAsPat", err)
	}
}

func TestCkPatAsBindsOuterNameAlongsideInnerPattern(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	as := ast.AsPat{VId: loc.At(loc.Nowhere, store.Intern("whole")), Pat: simpleVarPat(store, "part")}
	_, ve, err := inf.CkPat(cx, as)
	if err != nil {
		t.Fatalf("CkPat() error = %v", err)
	}
	if _, ok := ve[store.Intern("whole")]; !ok {
		t.Errorf("CkPat(as) missing outer binding 'whole'")
	}
	if _, ok := ve[store.Intern("part")]; !ok {
		t.Errorf("CkPat(as) missing inner binding 'part'")
	}
}

func TestCkPatAsRejectsNonVariableLeftSide(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	// "true" resolves to a constructor in scope, so it cannot appear to
	// the left of `as`.
	as := ast.AsPat{VId: loc.At(loc.Nowhere, store.Intern("true")), Pat: simpleVarPat(store, "part")}
	_, _, err := inf.CkPat(cx, as)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeNonVarInAs {
		t.Fatalf("CkPat() error = %v, want CodeNonVarInAs", err)
	}
}

func TestCkPatRecordRejectsDuplicateLabel(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	a := store.Intern("a")
	rec := ast.RecordPat{Fields: []ast.RecordPatField{
		{Label: label.OfIdent(a), Pat: simpleVarPat(store, "x")},
		{Label: label.OfIdent(a), Pat: simpleVarPat(store, "y")},
	}}
	_, _, err := inf.CkPat(cx, rec)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeDuplicateLabel {
		t.Fatalf("CkPat() error = %v, want CodeDuplicateLabel", err)
	}
}
