package analyzer

import (
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/symbols"
)

// CkTopDec elaborates a single top-level declaration against basis,
// returning the extended basis. Only `StrDec::Dec` is implemented; all
// other top-level forms (structures, signatures, functors) are Todo.
func (inf *Inferencer) CkTopDec(basis symbols.Basis, td ast.TopDec) (symbols.Basis, error) {
	strDecTop, ok := td.(ast.StrDecTopDec)
	if !ok {
		return symbols.Basis{}, diagnostics.NewTodo(td.Location())
	}
	decStrDec, ok := strDecTop.StrDec.(ast.DecStrDec)
	if !ok {
		return symbols.Basis{}, diagnostics.NewTodo(strDecTop.StrDec.Location())
	}
	cx := symbols.NewCx(basis)
	env, err := inf.CkDec(cx, decStrDec.Dec)
	if err != nil {
		return symbols.Basis{}, err
	}
	return basis.Extend(env), nil
}
