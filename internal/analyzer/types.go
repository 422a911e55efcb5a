package analyzer

import (
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

// CkTy elaborates a source-level type expression into a Ty.
func (inf *Inferencer) CkTy(cx symbols.Cx, t ast.Ty) (typesystem.Ty, error) {
	switch x := t.(type) {
	case ast.TyVarTy:
		// §9 Open Question (ii): cx.TyVars is never populated by any
		// declaration form, so a user-level type variable can never be
		// resolved here.
		return nil, diagnostics.NewTodo(x.Location())

	case ast.RecordTy:
		seen := map[label.Label]struct{}{}
		out := make([]typesystem.RecordField, 0, len(x.Fields))
		for _, f := range x.Fields {
			if _, dup := seen[f.Label]; dup {
				return nil, diagnostics.NewDuplicateLabel(x.Location(), inf.Store, f.Label)
			}
			seen[f.Label] = struct{}{}
			fieldTy, err := inf.CkTy(cx, f.Ty)
			if err != nil {
				return nil, err
			}
			out = append(out, typesystem.RecordField{Label: f.Label, Ty: fieldTy})
		}
		return typesystem.RecordTy{Fields: out}, nil

	case ast.TupleTy:
		fields := make([]typesystem.RecordField, len(x.Elems))
		for i, el := range x.Elems {
			ty, err := inf.CkTy(cx, el)
			if err != nil {
				return nil, err
			}
			fields[i] = typesystem.RecordField{Label: label.Tuple(i), Ty: ty}
		}
		return typesystem.RecordTy{Fields: fields}, nil

	case ast.ConTy:
		return inf.ckConTy(cx, x)

	case ast.ArrowTy:
		dom, err := inf.CkTy(cx, x.Dom)
		if err != nil {
			return nil, err
		}
		ran, err := inf.CkTy(cx, x.Ran)
		if err != nil {
			return nil, err
		}
		return typesystem.ArrowTy{Dom: dom, Ran: ran}, nil

	default:
		return nil, diagnostics.NewTodo(t.Location())
	}
}

func (inf *Inferencer) ckConTy(cx symbols.Cx, x ast.ConTy) (typesystem.Ty, error) {
	l := x.Location()
	info, ok := cx.Env.TyEnv[x.Con.Val]
	if !ok {
		return nil, diagnostics.NewUndefined(l, inf.Store, symbols.ItemType, x.Con.Val)
	}
	if len(x.Args) != info.Arity() {
		return nil, diagnostics.NewWrongNumTyArgs(l, info.Arity(), len(x.Args))
	}
	args := make([]typesystem.Ty, len(x.Args))
	for i, a := range x.Args {
		ty, err := inf.CkTy(cx, a)
		if err != nil {
			return nil, err
		}
		args[i] = ty
	}
	return info.Expand(args), nil
}
