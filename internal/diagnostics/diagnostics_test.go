package diagnostics

import (
	"strings"
	"testing"

	"github.com/vael-lang/vael/internal/checkstate"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

func TestErrorRenderingIncludesAllFields(t *testing.T) {
	e := &Error{Code: CodeUndefined, Phase: PhaseCheck, Loc: loc.Loc{Line: 2, Col: 5}, File: "x.yaml", Message: "undefined value identifier: foo"}
	got := e.Error()
	for _, want := range []string{"x.yaml", "check", "2:5", "T001", "undefined value identifier: foo"} {
		if !strings.Contains(got, want) {
			t.Errorf("Error() = %q, missing %q", got, want)
		}
	}
}

func TestNewUndefinedNamesTheItemKind(t *testing.T) {
	store := strstore.New()
	name := store.Intern("foo")
	err := NewUndefined(loc.Nowhere, store, symbols.ItemValue, name)
	if err.Code != CodeUndefined {
		t.Errorf("Code = %v, want CodeUndefined", err.Code)
	}
	if !strings.Contains(err.Message, "value identifier: foo") {
		t.Errorf("Message = %q, want it to name the value identifier", err.Message)
	}
}

func TestNewRedefinedRendersName(t *testing.T) {
	store := strstore.New()
	name := store.Intern("x")
	err := NewRedefined(loc.Nowhere, store, name)
	if err.Code != CodeRedefined {
		t.Errorf("Code = %v, want CodeRedefined", err.Code)
	}
	if !strings.Contains(err.Message, "x") {
		t.Errorf("Message = %q, missing identifier name", err.Message)
	}
}

func TestNewDuplicateLabelRendersLabel(t *testing.T) {
	store := strstore.New()
	lab := label.OfIdent(store.Intern("a"))
	err := NewDuplicateLabel(loc.Nowhere, store, lab)
	if err.Code != CodeDuplicateLabel {
		t.Errorf("Code = %v, want CodeDuplicateLabel", err.Code)
	}
}

func TestNewWrongNumTyArgsRendersBothCounts(t *testing.T) {
	err := NewWrongNumTyArgs(loc.Nowhere, 2, 1)
	if !strings.Contains(err.Message, "expected 2") || !strings.Contains(err.Message, "found 1") {
		t.Errorf("Message = %q, want expected/found counts", err.Message)
	}
}

func TestFromUnifyErrorMapsKindToCode(t *testing.T) {
	store := strstore.New()
	intSym := typesystem.PrimSym(store, "int")
	boolSym := typesystem.PrimSym(store, "bool")

	cases := []struct {
		name string
		err  *typesystem.UnifyError
		want Code
	}{
		{"head mismatch", &typesystem.UnifyError{Kind: typesystem.ErrHeadMismatch, Lhs: typesystem.CtorTy{Sym: intSym}, Rhs: typesystem.CtorTy{Sym: boolSym}}, CodeHeadMismatch},
		{"missing label", &typesystem.UnifyError{Kind: typesystem.ErrMissingLabel, Label: label.OfIdent(store.Intern("a"))}, CodeMissingLabel},
		{"circularity", &typesystem.UnifyError{Kind: typesystem.ErrCircularity, Var: typesystem.TyVar{ID: 1}, Occ: typesystem.CtorTy{Sym: intSym}}, CodeCircularity},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := FromUnifyError(loc.Nowhere, store, c.err)
			if got.Code != c.want {
				t.Errorf("FromUnifyError() code = %v, want %v", got.Code, c.want)
			}
		})
	}
}

func TestFromSolveErrorDistinguishesOverloadFromEscape(t *testing.T) {
	overload := FromSolveError(&checkstate.SolveError{Overload: true, Loc: loc.Loc{Line: 1, Col: 1}})
	if overload.Code != CodeNoSuitableOverload {
		t.Errorf("FromSolveError(overload) code = %v, want CodeNoSuitableOverload", overload.Code)
	}

	escape := FromSolveError(&checkstate.SolveError{Overload: false, Loc: loc.Loc{Line: 1, Col: 1}})
	if escape.Code != CodeTyNameEscape {
		t.Errorf("FromSolveError(escape) code = %v, want CodeTyNameEscape", escape.Code)
	}
}

func TestFromSymbolsErrorDispatchesByConcreteType(t *testing.T) {
	store := strstore.New()
	name := store.Intern("x")

	redef := FromSymbolsError(loc.Nowhere, store, &symbols.RedefinedError{Name: name})
	if redef.Code != CodeRedefined {
		t.Errorf("FromSymbolsError(RedefinedError) code = %v, want CodeRedefined", redef.Code)
	}

	undef := FromSymbolsError(loc.Nowhere, store, &symbols.UndefinedError{Item: symbols.ItemType, Name: name})
	if undef.Code != CodeUndefined {
		t.Errorf("FromSymbolsError(UndefinedError) code = %v, want CodeUndefined", undef.Code)
	}
}
