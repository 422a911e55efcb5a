package analyzer

import (
	"testing"

	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/basis"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/typesystem"
)

func TestCkTopDecExtendsBasisWithDeclaredBindings(t *testing.T) {
	store := strstore.New()
	b := basis.New(store)
	inf := New(store)

	td := ast.StrDecTopDec{StrDec: ast.DecStrDec{Dec: ast.ValDec{
		Bindings: []ast.ValBind{{Pat: simpleVarPat(store, "x"), Expr: intLitExpr()}},
	}}}

	out, err := inf.CkTopDec(b.Basis, td)
	if err != nil {
		t.Fatalf("CkTopDec() error = %v", err)
	}
	info, ok := out.Env.ValEnv[store.Intern("x")]
	if !ok {
		t.Fatalf("CkTopDec() did not add x to the basis")
	}
	if typesystem.String(info.Scheme.Body, store) != "int" {
		t.Errorf("x bound to %v, want int", info.Scheme.Body)
	}
}

func TestCkTopDecRejectsUnsupportedForms(t *testing.T) {
	store := strstore.New()
	b := basis.New(store)
	inf := New(store)

	_, err := inf.CkTopDec(b.Basis, ast.SigDecTopDec{})
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeTodo {
		t.Fatalf("CkTopDec() error = %v, want CodeTodo", err)
	}
}

func TestCkTopDecRejectsUnsupportedStrDecForms(t *testing.T) {
	store := strstore.New()
	b := basis.New(store)
	inf := New(store)

	td := ast.StrDecTopDec{StrDec: ast.StructureStrDec{}}
	_, err := inf.CkTopDec(b.Basis, td)
	derr, ok := err.(*diagnostics.Error)
	if !ok || derr.Code != diagnostics.CodeTodo {
		t.Fatalf("CkTopDec() error = %v, want CodeTodo", err)
	}
}
