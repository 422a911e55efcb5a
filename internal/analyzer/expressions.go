package analyzer

import (
	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/checkstate"
	"github.com/vael-lang/vael/internal/diagnostics"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/symbols"
	"github.com/vael-lang/vael/internal/typesystem"
)

func (inf *Inferencer) litTy(lit ast.Lit) typesystem.Ty {
	switch lit.Kind {
	case ast.LitDecInt, ast.LitHexInt:
		return typesystem.Prim(inf.Store, "int")
	case ast.LitDecWord, ast.LitHexWord:
		return typesystem.Prim(inf.Store, "word")
	case ast.LitReal:
		return typesystem.Prim(inf.Store, "real")
	case ast.LitStr:
		return typesystem.Prim(inf.Store, "string")
	case ast.LitChar:
		return typesystem.Prim(inf.Store, "char")
	default:
		panic("analyzer: unhandled literal kind")
	}
}

func (inf *Inferencer) unify(l loc.Loc, t1, t2 typesystem.Ty) error {
	if err := typesystem.Unify(inf.State.Subst, t1, t2); err != nil {
		if ue, ok := err.(*typesystem.UnifyError); ok {
			return diagnostics.FromUnifyError(l, inf.Store, ue)
		}
		return err
	}
	return nil
}

func (inf *Inferencer) apply(t typesystem.Ty) typesystem.Ty {
	return typesystem.Apply(inf.State.Subst, t)
}

func (inf *Inferencer) simpleLongVId(id loc.Located[ast.VId]) ast.LongVId {
	return ast.LongVId{VId: id}
}

func (inf *Inferencer) lookupVId(cx symbols.Cx, l loc.Loc, long ast.LongVId) (symbols.ValInfo, error) {
	env, err := symbols.GetEnv(cx.Env, long)
	if err != nil {
		return symbols.ValInfo{}, diagnostics.FromSymbolsError(l, inf.Store, err)
	}
	info, err := symbols.GetValInfo(env, long.VId.Val)
	if err != nil {
		return symbols.ValInfo{}, diagnostics.FromSymbolsError(l, inf.Store, err)
	}
	return info, nil
}

// CkExp infers the type of an expression under context cx, recording
// any overload/scope-escape obligations onto inf.State.
func (inf *Inferencer) CkExp(cx symbols.Cx, e ast.Expr) (typesystem.Ty, error) {
	l := e.Location()
	switch x := e.(type) {
	case ast.SConExpr:
		return inf.litTy(x.Lit), nil

	case ast.LongVIdExpr:
		info, err := inf.lookupVId(cx, l, x.Id)
		if err != nil {
			return nil, err
		}
		return inf.Instantiate(l, info.Scheme), nil

	case ast.RecordExpr:
		return inf.ckRecordExpr(cx, l, x.Fields)

	case ast.SelectExpr:
		return nil, diagnostics.NewTodo(l)

	case ast.TupleExpr:
		fields := make([]typesystem.RecordField, len(x.Elems))
		for i, el := range x.Elems {
			ty, err := inf.CkExp(cx, el)
			if err != nil {
				return nil, err
			}
			fields[i] = typesystem.RecordField{Label: label.Tuple(i), Ty: ty}
		}
		return typesystem.RecordTy{Fields: fields}, nil

	case ast.ListExpr:
		elem := inf.State.NewVarTy()
		for _, el := range x.Elems {
			ty, err := inf.CkExp(cx, el)
			if err != nil {
				return nil, err
			}
			if err := inf.unify(el.Location(), ty, elem); err != nil {
				return nil, err
			}
		}
		return typesystem.CtorTy{Args: []typesystem.Ty{inf.apply(elem)}, Sym: typesystem.PrimSym(inf.Store, "list")}, nil

	case ast.SequenceExpr:
		var last typesystem.Ty
		for _, el := range x.Elems {
			ty, err := inf.CkExp(cx, el)
			if err != nil {
				return nil, err
			}
			last = ty
		}
		return last, nil

	case ast.LetExpr:
		return inf.ckLetExpr(cx, l, x)

	case ast.AppExpr:
		fnTy, err := inf.CkExp(cx, x.Func)
		if err != nil {
			return nil, err
		}
		argTy, err := inf.CkExp(cx, x.Arg)
		if err != nil {
			return nil, err
		}
		rho := inf.State.NewVarTy()
		if err := inf.unify(l, fnTy, typesystem.ArrowTy{Dom: argTy, Ran: rho}); err != nil {
			return nil, err
		}
		return inf.apply(rho), nil

	case ast.InfixAppExpr:
		return inf.ckInfixAppExpr(cx, l, x)

	case ast.TypedExpr:
		innerTy, err := inf.CkExp(cx, x.Expr)
		if err != nil {
			return nil, err
		}
		declTy, err := inf.CkTy(cx, x.Ty)
		if err != nil {
			return nil, err
		}
		if err := inf.unify(l, innerTy, declTy); err != nil {
			return nil, err
		}
		return inf.apply(declTy), nil

	case ast.AndalsoExpr:
		return inf.ckShortCircuit(cx, l, x.Left, x.Right)

	case ast.OrelseExpr:
		return inf.ckShortCircuit(cx, l, x.Left, x.Right)

	case ast.HandleExpr:
		head, err := inf.CkExp(cx, x.Expr)
		if err != nil {
			return nil, err
		}
		arg, res, err := inf.CkCases(cx, x.Cases)
		if err != nil {
			return nil, err
		}
		exn := typesystem.Prim(inf.Store, "exn")
		if err := inf.unify(l, arg, exn); err != nil {
			return nil, err
		}
		if err := inf.unify(l, res, head); err != nil {
			return nil, err
		}
		return inf.apply(head), nil

	case ast.RaiseExpr:
		innerTy, err := inf.CkExp(cx, x.Expr)
		if err != nil {
			return nil, err
		}
		if err := inf.unify(l, innerTy, typesystem.Prim(inf.Store, "exn")); err != nil {
			return nil, err
		}
		return inf.State.NewVarTy(), nil

	case ast.IfExpr:
		condTy, err := inf.CkExp(cx, x.Cond)
		if err != nil {
			return nil, err
		}
		if err := inf.unify(x.Cond.Location(), condTy, typesystem.Prim(inf.Store, "bool")); err != nil {
			return nil, err
		}
		thenTy, err := inf.CkExp(cx, x.Then)
		if err != nil {
			return nil, err
		}
		elseTy, err := inf.CkExp(cx, x.Else)
		if err != nil {
			return nil, err
		}
		if err := inf.unify(l, thenTy, elseTy); err != nil {
			return nil, err
		}
		return inf.apply(thenTy), nil

	case ast.WhileExpr:
		return nil, diagnostics.NewTodo(l)

	case ast.CaseExpr:
		headTy, err := inf.CkExp(cx, x.Expr)
		if err != nil {
			return nil, err
		}
		arg, res, err := inf.CkCases(cx, x.Cases)
		if err != nil {
			return nil, err
		}
		if err := inf.unify(l, headTy, arg); err != nil {
			return nil, err
		}
		return inf.apply(res), nil

	case ast.FnExpr:
		arg, res, err := inf.CkCases(cx, x.Cases)
		if err != nil {
			return nil, err
		}
		return typesystem.ArrowTy{Dom: inf.apply(arg), Ran: inf.apply(res)}, nil

	default:
		return nil, diagnostics.NewTodo(l)
	}
}

func (inf *Inferencer) ckShortCircuit(cx symbols.Cx, l loc.Loc, left, right ast.Expr) (typesystem.Ty, error) {
	boolTy := typesystem.Prim(inf.Store, "bool")
	leftTy, err := inf.CkExp(cx, left)
	if err != nil {
		return nil, err
	}
	if err := inf.unify(left.Location(), leftTy, boolTy); err != nil {
		return nil, err
	}
	rightTy, err := inf.CkExp(cx, right)
	if err != nil {
		return nil, err
	}
	if err := inf.unify(right.Location(), rightTy, boolTy); err != nil {
		return nil, err
	}
	return boolTy, nil
}

func (inf *Inferencer) ckRecordExpr(cx symbols.Cx, l loc.Loc, fields []ast.RecordExprField) (typesystem.Ty, error) {
	seen := map[label.Label]struct{}{}
	out := make([]typesystem.RecordField, 0, len(fields))
	for _, f := range fields {
		if _, dup := seen[f.Label]; dup {
			return nil, diagnostics.NewDuplicateLabel(l, inf.Store, f.Label)
		}
		seen[f.Label] = struct{}{}
		ty, err := inf.CkExp(cx, f.Expr)
		if err != nil {
			return nil, err
		}
		out = append(out, typesystem.RecordField{Label: f.Label, Ty: ty})
	}
	return typesystem.RecordTy{Fields: out}, nil
}

func (inf *Inferencer) ckLetExpr(cx symbols.Cx, l loc.Loc, x ast.LetExpr) (typesystem.Ty, error) {
	savedT := make(map[typesystem.Sym]struct{}, len(cx.TyNames))
	for s := range cx.TyNames {
		savedT[s] = struct{}{}
	}
	env, err := inf.CkDec(cx, x.Dec)
	if err != nil {
		return nil, err
	}
	innerCx := cx.OPlus(env)
	var last typesystem.Ty
	var lastLoc loc.Loc
	for _, el := range x.Elems {
		ty, err := inf.CkExp(innerCx, el)
		if err != nil {
			return nil, err
		}
		last = ty
		lastLoc = el.Location()
	}
	inf.State.RecordEscape(checkstate.EscapeObligation{Loc: lastLoc, Ty: last, Scope: savedT})
	return last, nil
}

func (inf *Inferencer) ckInfixAppExpr(cx symbols.Cx, l loc.Loc, x ast.InfixAppExpr) (typesystem.Ty, error) {
	leftTy, err := inf.CkExp(cx, x.Left)
	if err != nil {
		return nil, err
	}
	rightTy, err := inf.CkExp(cx, x.Right)
	if err != nil {
		return nil, err
	}
	argTy := typesystem.RecordTy{Fields: []typesystem.RecordField{
		{Label: label.Tuple(0), Ty: leftTy},
		{Label: label.Tuple(1), Ty: rightTy},
	}}
	info, err := inf.lookupVId(cx, x.VId.Loc, inf.simpleLongVId(x.VId))
	if err != nil {
		return nil, err
	}
	fnTy := inf.Instantiate(l, info.Scheme)
	rho := inf.State.NewVarTy()
	if err := inf.unify(l, fnTy, typesystem.ArrowTy{Dom: argTy, Ran: rho}); err != nil {
		return nil, err
	}
	return inf.apply(rho), nil
}

// CkCases produces (arg, res): the argument and result type shared
// across every arm of a match, by inferring each arm's pattern (binding
// its variables into a local environment) and body, and unifying all
// patterns with a single arg variable and all bodies with a single res
// variable.
func (inf *Inferencer) CkCases(cx symbols.Cx, cases []ast.Case) (typesystem.Ty, typesystem.Ty, error) {
	arg := inf.State.NewVarTy()
	res := inf.State.NewVarTy()
	for _, c := range cases {
		patTy, patEnv, err := inf.CkPat(cx, c.Pat)
		if err != nil {
			return nil, nil, err
		}
		if err := inf.unify(c.Pat.Location(), patTy, arg); err != nil {
			return nil, nil, err
		}
		bodyCx := cx.OPlus(symbols.Env{StrEnv: symbols.StrEnv{}, TyEnv: symbols.TyEnv{}, ValEnv: patEnv})
		bodyTy, err := inf.CkExp(bodyCx, c.Expr)
		if err != nil {
			return nil, nil, err
		}
		if err := inf.unify(c.Expr.Location(), bodyTy, res); err != nil {
			return nil, nil, err
		}
	}
	return inf.apply(arg), inf.apply(res), nil
}
