package analyzer

import (
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/strstore"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

var forbiddenBindingNames = []string{"true", "false", "nil", "::", "ref"}

func (inf *Inferencer) forbiddenSet() map[strstore.ID]struct{} {
	out := make(map[strstore.ID]struct{}, len(forbiddenBindingNames))
	for _, n := range forbiddenBindingNames {
		out[inf.Store.Intern(n)] = struct{}{}
	}
	return out
}

// checkForbidden recursively scans a pattern for a bound-identifier
// occurrence of one of the reserved constructor names; these can never
// be rebound by a `val` declaration, regardless of what they currently
// resolve to in the environment.
func (inf *Inferencer) checkForbidden(forbidden map[strstore.ID]struct{}, p ast.Pat) error {
	switch x := p.(type) {
	case ast.LongVIdPat:
		if x.Id.Simple() {
			if _, bad := forbidden[x.Id.VId.Val]; bad {
				return diagnostics.NewForbiddenBinding(x.Location(), inf.Store, x.Id.VId.Val)
			}
		}
	case ast.AsPat:
		if _, bad := forbidden[x.VId.Val]; bad {
			return diagnostics.NewForbiddenBinding(x.Location(), inf.Store, x.VId.Val)
		}
		return inf.checkForbidden(forbidden, x.Pat)
	case ast.TuplePat:
		for _, el := range x.Elems {
			if err := inf.checkForbidden(forbidden, el); err != nil {
				return err
			}
		}
	case ast.ListPat:
		for _, el := range x.Elems {
			if err := inf.checkForbidden(forbidden, el); err != nil {
				return err
			}
		}
	case ast.RecordPat:
		for _, f := range x.Fields {
			if err := inf.checkForbidden(forbidden, f.Pat); err != nil {
				return err
			}
		}
	case ast.CtorPat:
		return inf.checkForbidden(forbidden, x.Arg)
	case ast.InfixCtorPat:
		if err := inf.checkForbidden(forbidden, x.Left); err != nil {
			return err
		}
		return inf.checkForbidden(forbidden, x.Right)
	case ast.TypedPat:
		return inf.checkForbidden(forbidden, x.Pat)
	}
	return nil
}

// CkDec elaborates a declaration into the Env it introduces.
func (inf *Inferencer) CkDec(cx symbols.Cx, d ast.Dec) (symbols.Env, error) {
	switch x := d.(type) {
	case ast.ValDec:
		return inf.ckValDec(cx, x)
	case ast.TypeDec:
		return inf.ckTypeDec(cx, x)
	case ast.DatatypeDec:
		return inf.ckDatatypeDec(cx, x)
	case ast.SeqDec:
		return inf.ckSeqDec(cx, x)
	case ast.FixityDec:
		return symbols.NewEnv(), nil
	default:
		return symbols.Env{}, diagnostics.NewTodo(d.Location())
	}
}

func (inf *Inferencer) ckValDec(cx symbols.Cx, x ast.ValDec) (symbols.Env, error) {
	forbidden := inf.forbiddenSet()
	ve := symbols.ValEnv{}
	for _, b := range x.Bindings {
		if err := inf.checkForbidden(forbidden, b.Pat); err != nil {
			return symbols.Env{}, err
		}
		patTy, patVe, err := inf.CkPat(cx, b.Pat)
		if err != nil {
			return symbols.Env{}, err
		}
		bodyTy, err := inf.CkExp(cx, b.Expr)
		if err != nil {
			return symbols.Env{}, err
		}
		if err := inf.unify(b.Pat.Location(), patTy, bodyTy); err != nil {
			return symbols.Env{}, err
		}
		for name, info := range patVe {
			info.Scheme = typesystem.ApplyScheme(inf.State.Subst, info.Scheme)
			patVe[name] = info
		}
		if err := symbols.EnvMerge(ve, patVe); err != nil {
			return symbols.Env{}, diagnostics.FromSymbolsError(b.Pat.Location(), inf.Store, err)
		}
	}
	return symbols.Env{StrEnv: symbols.StrEnv{}, TyEnv: symbols.TyEnv{}, ValEnv: ve}, nil
}

func (inf *Inferencer) ckTypeDec(cx symbols.Cx, x ast.TypeDec) (symbols.Env, error) {
	tyEnv := symbols.TyEnv{}
	for _, b := range x.Bindings {
		ty, err := inf.CkTy(cx, b.Ty)
		if err != nil {
			return symbols.Env{}, err
		}
		if err := symbols.EnvIns(tyEnv, b.TyCon.Val, symbols.TyInfo{TyFcn: typesystem.Mono(ty), ValEnv: symbols.ValEnv{}}); err != nil {
			return symbols.Env{}, diagnostics.FromSymbolsError(b.TyCon.Loc, inf.Store, err)
		}
	}
	return symbols.Env{StrEnv: symbols.StrEnv{}, TyEnv: tyEnv, ValEnv: symbols.ValEnv{}}, nil
}

func (inf *Inferencer) ckDatatypeDec(cx symbols.Cx, x ast.DatatypeDec) (symbols.Env, error) {
	localCx := cx.Clone()
	syms := make(map[strstore.ID]typesystem.Sym, len(x.Bindings))
	for _, b := range x.Bindings {
		sym := typesystem.NewGeneratedSym(b.TyCon.Val)
		syms[b.TyCon.Val] = sym
		info := symbols.TyInfo{TyFcn: typesystem.Mono(typesystem.CtorTy{Sym: sym}), ValEnv: symbols.ValEnv{}}
		if err := symbols.EnvIns(localCx.Env.TyEnv, b.TyCon.Val, info); err != nil {
			return symbols.Env{}, diagnostics.FromSymbolsError(b.TyCon.Loc, inf.Store, err)
		}
		localCx.TyNames[sym] = struct{}{}
	}

	forbidden := inf.forbiddenSet()
	groupValEnv := symbols.ValEnv{}
	perDatatypeValEnv := make(map[strstore.ID]symbols.ValEnv, len(x.Bindings))
	for _, b := range x.Bindings {
		dataSym := syms[b.TyCon.Val]
		dataTy := typesystem.CtorTy{Sym: dataSym}
		ve := symbols.ValEnv{}
		for _, c := range b.Ctors {
			if _, bad := forbidden[c.VId.Val]; bad {
				return symbols.Env{}, diagnostics.NewForbiddenBinding(c.VId.Loc, inf.Store, c.VId.Val)
			}
			var ctorTy typesystem.Ty
			if c.Arg != nil {
				argTy, err := inf.CkTy(localCx, c.Arg)
				if err != nil {
					return symbols.Env{}, err
				}
				ctorTy = typesystem.ArrowTy{Dom: argTy, Ran: dataTy}
			} else {
				ctorTy = dataTy
			}
			info := symbols.NewCtorInfo(typesystem.Mono(ctorTy))
			if err := symbols.EnvIns(groupValEnv, c.VId.Val, info); err != nil {
				return symbols.Env{}, diagnostics.FromSymbolsError(c.VId.Loc, inf.Store, err)
			}
			ve[c.VId.Val] = info
		}
		perDatatypeValEnv[b.TyCon.Val] = ve
	}

	tyEnv := symbols.TyEnv{}
	for _, b := range x.Bindings {
		tyEnv[b.TyCon.Val] = symbols.TyInfo{
			TyFcn:  typesystem.Mono(typesystem.CtorTy{Sym: syms[b.TyCon.Val]}),
			ValEnv: perDatatypeValEnv[b.TyCon.Val],
		}
	}

	return symbols.Env{StrEnv: symbols.StrEnv{}, TyEnv: tyEnv, ValEnv: groupValEnv}, nil
}

func (inf *Inferencer) ckSeqDec(cx symbols.Cx, x ast.SeqDec) (symbols.Env, error) {
	cur := cx
	accum := symbols.NewEnv()
	for _, d := range x.Decs {
		denv, err := inf.CkDec(cur, d)
		if err != nil {
			return symbols.Env{}, err
		}
		accum = accum.Extend(denv)
		cur = cur.OPlus(denv)
	}
	return accum, nil
}
