package symbols

import (
	"testing"

	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/typesystem"
)

func TestEnvInsRejectsRedefinition(t *testing.T) {
	store := strstore.New()
	x := store.Intern("x")
	m := ValEnv{x: NewValInfo(typesystem.Mono(typesystem.Unit()))}

	err := EnvIns(m, x, NewValInfo(typesystem.Mono(typesystem.Unit())))
	rerr, ok := err.(*RedefinedError)
	if !ok {
		t.Fatalf("EnvIns() error = %v (%T), want *RedefinedError", err, err)
	}
	if rerr.Name != x {
		t.Errorf("RedefinedError.Name = %v, want %v", rerr.Name, x)
	}
}

func TestEnvMergeStopsAtFirstCollision(t *testing.T) {
	store := strstore.New()
	x := store.Intern("x")
	lhs := ValEnv{x: NewValInfo(typesystem.Mono(typesystem.Unit()))}
	rhs := ValEnv{x: NewValInfo(typesystem.Mono(typesystem.Unit()))}

	if err := EnvMerge(lhs, rhs); err == nil {
		t.Fatalf("EnvMerge() error = nil, want RedefinedError")
	}
}

func TestGetEnvWalksStructurePath(t *testing.T) {
	store := strstore.New()
	x := store.Intern("x")
	sName := store.Intern("S")
	inner := Env{ValEnv: ValEnv{x: NewValInfo(typesystem.Mono(typesystem.Unit()))}, TyEnv: TyEnv{}, StrEnv: StrEnv{}}
	outer := Env{StrEnv: StrEnv{sName: inner}, TyEnv: TyEnv{}, ValEnv: ValEnv{}}

	long := ast.LongVId{StrIds: []loc.Located[ast.StrId]{loc.At(loc.Nowhere, sName)}, VId: loc.At(loc.Nowhere, x)}
	got, err := GetEnv(outer, long)
	if err != nil {
		t.Fatalf("GetEnv() error = %v", err)
	}
	if _, ok := got.ValEnv[x]; !ok {
		t.Errorf("GetEnv() did not resolve to the structure's inner Env")
	}
}

func TestGetEnvFailsOnUnknownStructure(t *testing.T) {
	store := strstore.New()
	missing := store.Intern("Missing")
	long := ast.LongVId{StrIds: []loc.Located[ast.StrId]{loc.At(loc.Nowhere, missing)}}

	_, err := GetEnv(NewEnv(), long)
	uerr, ok := err.(*UndefinedError)
	if !ok {
		t.Fatalf("GetEnv() error = %v (%T), want *UndefinedError", err, err)
	}
	if uerr.Item != ItemStructure {
		t.Errorf("UndefinedError.Item = %v, want ItemStructure", uerr.Item)
	}
}

func TestGetValInfoFailsOnUnknownValue(t *testing.T) {
	store := strstore.New()
	name := store.Intern("y")
	_, err := GetValInfo(NewEnv(), name)
	uerr, ok := err.(*UndefinedError)
	if !ok {
		t.Fatalf("GetValInfo() error = %v (%T), want *UndefinedError", err, err)
	}
	if uerr.Item != ItemValue {
		t.Errorf("UndefinedError.Item = %v, want ItemValue", uerr.Item)
	}
}
