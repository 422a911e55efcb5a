package analyzer

import (
	"testing"

	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/typesystem"
)

func simpleVarPat(store *strstore.StrStore, name string) ast.Pat {
	return ast.LongVIdPat{Id: ast.LongVId{VId: loc.At(loc.Nowhere, store.Intern(name))}}
}

func TestCkDecValBindsPatternToExprType(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	dec := ast.ValDec{Bindings: []ast.ValBind{{Pat: simpleVarPat(store, "x"), Expr: intLitExpr()}}}
	env, err := inf.CkDec(cx, dec)
	if err != nil {
		t.Fatalf("CkDec() error = %v", err)
	}
	info, ok := env.ValEnv[store.Intern("x")]
	if !ok {
		t.Fatalf("CkDec() did not bind x")
	}
	if typesystem.String(info.Scheme.Body, store) != "int" {
		t.Errorf("x bound to %v, want int", info.Scheme.Body)
	}
}

func TestCkDecValRejectsForbiddenRebinding(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	dec := ast.ValDec{Bindings: []ast.ValBind{{Pat: simpleVarPat(store, "true"), Expr: intLitExpr()}}}
	_, err := inf.CkDec(cx, dec)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeForbiddenBinding {
		t.Fatalf("CkDec() error = %v, want CodeForbiddenBinding", err)
	}
}

func TestCkDecValRejectsDuplicateBindingInSameGroup(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	dec := ast.ValDec{Bindings: []ast.ValBind{
		{Pat: simpleVarPat(store, "x"), Expr: intLitExpr()},
		{Pat: simpleVarPat(store, "x"), Expr: intLitExpr()},
	}}
	_, err := inf.CkDec(cx, dec)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeRedefined {
		t.Fatalf("CkDec() error = %v, want CodeRedefined", err)
	}
}

func TestCkDecTypeBindsSynonym(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	dec := ast.TypeDec{Bindings: []ast.TypeBind{{TyCon: loc.At(loc.Nowhere, store.Intern("myint")), Ty: intConTy(store)}}}
	env, err := inf.CkDec(cx, dec)
	if err != nil {
		t.Fatalf("CkDec() error = %v", err)
	}
	info, ok := env.TyEnv[store.Intern("myint")]
	if !ok {
		t.Fatalf("CkDec() did not bind myint")
	}
	if typesystem.String(info.Expand(nil), store) != "int" {
		t.Errorf("myint expands to %v, want int", info.Expand(nil))
	}
}

func TestCkDecDatatypeBindsNullaryAndUnaryConstructors(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	none := store.Intern("None")
	some := store.Intern("Some")
	optTyCon := store.Intern("opt")

	dec := ast.DatatypeDec{Bindings: []ast.DatatypeBind{{
		TyCon: loc.At(loc.Nowhere, optTyCon),
		Ctors: []ast.CtorBind{
			{VId: loc.At(loc.Nowhere, none)},
			{VId: loc.At(loc.Nowhere, some), Arg: intConTy(store)},
		},
	}}}

	env, err := inf.CkDec(cx, dec)
	if err != nil {
		t.Fatalf("CkDec() error = %v", err)
	}
	noneInfo, ok := env.ValEnv[none]
	if !ok {
		t.Fatalf("CkDec() did not bind None")
	}
	optTy, ok := noneInfo.Scheme.Body.(typesystem.CtorTy)
	if !ok || optTy.Sym.Name != optTyCon {
		t.Fatalf("None has type %v, want opt", noneInfo.Scheme.Body)
	}

	someInfo, ok := env.ValEnv[some]
	if !ok {
		t.Fatalf("CkDec() did not bind Some")
	}
	arrow, ok := someInfo.Scheme.Body.(typesystem.ArrowTy)
	if !ok {
		t.Fatalf("Some has type %v, want ArrowTy", someInfo.Scheme.Body)
	}
	if typesystem.String(arrow.Dom, store) != "int" {
		t.Errorf("Some argument = %v, want int", arrow.Dom)
	}
}

func TestCkDecDatatypeRejectsForbiddenConstructorName(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	dec := ast.DatatypeDec{Bindings: []ast.DatatypeBind{{
		TyCon: loc.At(loc.Nowhere, store.Intern("t")),
		Ctors: []ast.CtorBind{{VId: loc.At(loc.Nowhere, store.Intern("true"))}},
	}}}
	_, err := inf.CkDec(cx, dec)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeForbiddenBinding {
		t.Fatalf("CkDec() error = %v, want CodeForbiddenBinding", err)
	}
}

func TestCkDecSeqThreadsEnvironmentForward(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	seq := ast.SeqDec{Decs: []ast.Dec{
		ast.ValDec{Bindings: []ast.ValBind{{Pat: simpleVarPat(store, "x"), Expr: intLitExpr()}}},
		ast.ValDec{Bindings: []ast.ValBind{{Pat: simpleVarPat(store, "y"), Expr: varExpr(store, "x")}}},
	}}
	env, err := inf.CkDec(cx, seq)
	if err != nil {
		t.Fatalf("CkDec() error = %v", err)
	}
	if _, ok := env.ValEnv[store.Intern("x")]; !ok {
		t.Errorf("CkDec(seq) missing x")
	}
	yInfo, ok := env.ValEnv[store.Intern("y")]
	if !ok {
		t.Fatalf("CkDec(seq) missing y")
	}
	if typesystem.String(yInfo.Scheme.Body, store) != "int" {
		t.Errorf("y bound to %v, want int", yInfo.Scheme.Body)
	}
}

func TestCkDecFixityProducesEmptyEnv(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	env, err := inf.CkDec(cx, ast.FixityDec{Kind: ast.FixityInfix, VIds: []loc.Located[ast.VId]{loc.At(loc.Nowhere, store.Intern("+"))}})
	if err != nil {
		t.Fatalf("CkDec() error = %v", err)
	}
	if len(env.ValEnv) != 0 {
		t.Errorf("CkDec(fixity) = %v, want empty Env", env)
	}
}

func TestCkDecUnsupportedFormsAreTodo(t *testing.T) {
	store := strstore.New()
	inf, cx := newTestCx(store)

	_, err := inf.CkDec(cx, ast.FunDec{})
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeTodo {
		t.Fatalf("CkDec(FunDec) error = %v, want CodeTodo", err)
	}
}
