package analyzer

import (
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

// CkPat infers a pattern's type and the value environment of variables
// it binds.
func (inf *Inferencer) CkPat(cx symbols.Cx, p ast.Pat) (typesystem.Ty, symbols.ValEnv, error) {
	l := p.Location()
	switch x := p.(type) {
	case ast.WildcardPat:
		return inf.State.NewVarTy(), symbols.ValEnv{}, nil

	case ast.SConPat:
		return inf.litTy(x.Lit), symbols.ValEnv{}, nil

	case ast.LongVIdPat:
		return inf.ckLongVIdPat(cx, l, x.Id)

	case ast.RecordPat:
		return inf.ckRecordPat(cx, l, x.Fields)

	case ast.TuplePat:
		fields := make([]typesystem.RecordField, len(x.Elems))
		ve := symbols.ValEnv{}
		for i, el := range x.Elems {
			ty, sub, err := inf.CkPat(cx, el)
			if err != nil {
				return nil, nil, err
			}
			if err := symbols.EnvMerge(ve, sub); err != nil {
				return nil, nil, diagnostics.FromSymbolsError(el.Location(), inf.Store, err)
			}
			fields[i] = typesystem.RecordField{Label: label.Tuple(i), Ty: ty}
		}
		return typesystem.RecordTy{Fields: fields}, ve, nil

	case ast.ListPat:
		elem := inf.State.NewVarTy()
		ve := symbols.ValEnv{}
		for _, el := range x.Elems {
			ty, sub, err := inf.CkPat(cx, el)
			if err != nil {
				return nil, nil, err
			}
			if err := symbols.EnvMerge(ve, sub); err != nil {
				return nil, nil, diagnostics.FromSymbolsError(el.Location(), inf.Store, err)
			}
			if err := inf.unify(el.Location(), ty, elem); err != nil {
				return nil, nil, err
			}
		}
		for name, info := range ve {
			info.Scheme = typesystem.ApplyScheme(inf.State.Subst, info.Scheme)
			ve[name] = info
		}
		listTy := typesystem.CtorTy{Args: []typesystem.Ty{inf.apply(elem)}, Sym: typesystem.PrimSym(inf.Store, "list")}
		return listTy, ve, nil

	case ast.CtorPat:
		return inf.ckCtorPat(cx, l, x)

	case ast.InfixCtorPat:
		return inf.ckInfixCtorPat(cx, l, x)

	case ast.TypedPat:
		innerTy, ve, err := inf.CkPat(cx, x.Pat)
		if err != nil {
			return nil, nil, err
		}
		declTy, err := inf.CkTy(cx, x.Ty)
		if err != nil {
			return nil, nil, err
		}
		if err := inf.unify(l, innerTy, declTy); err != nil {
			return nil, nil, err
		}
		return inf.apply(declTy), ve, nil

	case ast.AsPat:
		return inf.ckAsPat(cx, l, x)

	default:
		return nil, nil, diagnostics.NewTodo(l)
	}
}

func (inf *Inferencer) ckLongVIdPat(cx symbols.Cx, l loc.Loc, long ast.LongVId) (typesystem.Ty, symbols.ValEnv, error) {
	if long.Simple() {
		if info, ok := cx.Env.ValEnv[long.VId.Val]; ok && info.Status != symbols.Val {
			return inf.Instantiate(l, info.Scheme), symbols.ValEnv{}, nil
		}
		rho := inf.State.NewVarTy()
		return rho, symbols.ValEnv{long.VId.Val: symbols.NewValInfo(typesystem.Mono(rho))}, nil
	}
	info, err := inf.lookupVId(cx, l, long)
	if err != nil {
		return nil, nil, err
	}
	if info.Status == symbols.Val {
		return nil, nil, diagnostics.NewValAsPat(l)
	}
	return inf.Instantiate(l, info.Scheme), symbols.ValEnv{}, nil
}

func (inf *Inferencer) ckRecordPat(cx symbols.Cx, l loc.Loc, fields []ast.RecordPatField) (typesystem.Ty, symbols.ValEnv, error) {
	seen := map[label.Label]struct{}{}
	ve := symbols.ValEnv{}
	out := make([]typesystem.RecordField, 0, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Label]; dup {
			return nil, nil, diagnostics.NewDuplicateLabel(l, inf.Store, f.Label)
		}
		seen[f.Label] = struct{}{}
		ty, sub, err := inf.CkPat(cx, f.Pat)
		if err != nil {
			return nil, nil, err
		}
		if err := symbols.EnvMerge(ve, sub); err != nil {
			return nil, nil, diagnostics.FromSymbolsError(f.Pat.Location(), inf.Store, err)
		}
		out = append(out, typesystem.RecordField{Label: f.Label, Ty: ty})
	}
	return typesystem.RecordTy{Fields: out}, ve, nil
}

// ckCtorApp is shared by CtorPat and InfixCtorPat: resolve vid, require
// Ctor status (ValAsPat otherwise), unify its scheme against arg -> rho.
func (inf *Inferencer) ckCtorApp(cx symbols.Cx, l loc.Loc, vid ast.LongVId, argTy typesystem.Ty) (typesystem.Ty, error) {
	info, err := inf.lookupVId(cx, l, vid)
	if err != nil {
		return nil, err
	}
	if info.Status != symbols.Ctor {
		return nil, diagnostics.NewValAsPat(l)
	}
	ctorTy := inf.Instantiate(l, info.Scheme)
	rho := inf.State.NewVarTy()
	if err := inf.unify(l, ctorTy, typesystem.ArrowTy{Dom: argTy, Ran: rho}); err != nil {
		return nil, err
	}
	return inf.apply(rho), nil
}

func (inf *Inferencer) ckCtorPat(cx symbols.Cx, l loc.Loc, x ast.CtorPat) (typesystem.Ty, symbols.ValEnv, error) {
	argTy, ve, err := inf.CkPat(cx, x.Arg)
	if err != nil {
		return nil, nil, err
	}
	rho, err := inf.ckCtorApp(cx, l, x.Ctor, argTy)
	if err != nil {
		return nil, nil, err
	}
	return rho, ve, nil
}

func (inf *Inferencer) ckInfixCtorPat(cx symbols.Cx, l loc.Loc, x ast.InfixCtorPat) (typesystem.Ty, symbols.ValEnv, error) {
	leftTy, leftVe, err := inf.CkPat(cx, x.Left)
	if err != nil {
		return nil, nil, err
	}
	rightTy, rightVe, err := inf.CkPat(cx, x.Right)
	if err != nil {
		return nil, nil, err
	}
	ve := symbols.ValEnv{}
	if err := symbols.EnvMerge(ve, leftVe); err != nil {
		return nil, nil, diagnostics.FromSymbolsError(x.Left.Location(), inf.Store, err)
	}
	if err := symbols.EnvMerge(ve, rightVe); err != nil {
		return nil, nil, diagnostics.FromSymbolsError(x.Right.Location(), inf.Store, err)
	}
	argTy := typesystem.RecordTy{Fields: []typesystem.RecordField{
		{Label: label.Tuple(0), Ty: leftTy},
		{Label: label.Tuple(1), Ty: rightTy},
	}}
	rho, err := inf.ckCtorApp(cx, l, inf.simpleLongVId(x.Ctor), argTy)
	if err != nil {
		return nil, nil, err
	}
	return rho, ve, nil
}

func (inf *Inferencer) ckAsPat(cx symbols.Cx, l loc.Loc, x ast.AsPat) (typesystem.Ty, symbols.ValEnv, error) {
	if info, ok := cx.Env.ValEnv[x.VId.Val]; ok && info.Status != symbols.Val {
		return nil, nil, diagnostics.NewNonVarInAs(l, inf.Store, x.VId.Val)
	}
	innerTy, ve, err := inf.CkPat(cx, x.Pat)
	if err != nil {
		return nil, nil, err
	}
	finalTy := innerTy
	if x.Ty != nil {
		declTy, err := inf.CkTy(cx, x.Ty)
		if err != nil {
			return nil, nil, err
		}
		if err := inf.unify(l, innerTy, declTy); err != nil {
			return nil, nil, err
		}
		finalTy = inf.apply(declTy)
	}
	out := symbols.ValEnv{}
	if err := symbols.EnvMerge(out, ve); err != nil {
		return nil, nil, diagnostics.FromSymbolsError(l, inf.Store, err)
	}
	if err := symbols.EnvIns(out, x.VId.Val, symbols.NewValInfo(typesystem.Mono(inf.apply(finalTy)))); err != nil {
		return nil, nil, diagnostics.FromSymbolsError(l, inf.Store, err)
	}
	return inf.apply(finalTy), out, nil
}
