// Package fixture loads vaelcheck's demo input format: a YAML document
// describing a sequence of top-level declarations, built directly into
// the AST the checker consumes. This is driver scope, not core
// contract — a real front end would come from a lexer and parser
// instead.
package fixture

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vael-lang/vael/internal/ast"
	"github.com/vael-lang/vael/internal/label"
	"github.com/vael-lang/vael/internal/loc"
	"github.com/vael-lang/vael/internal/strstore"
)

// Parse reads a fixture document: a YAML sequence, each element one
// top-level declaration in the shape `dec` below understands.
func Parse(data []byte, store *strstore.StrStore) ([]ast.TopDec, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("fixture: top level must be a sequence of declarations")
	}
	b := &builder{store: store}
	out := make([]ast.TopDec, 0, len(root.Content))
	for _, n := range root.Content {
		dec, err := b.dec(n)
		if err != nil {
			return nil, err
		}
		out = append(out, ast.StrDecTopDec{StrDec: ast.DecStrDec{Dec: dec}})
	}
	return out, nil
}

type builder struct {
	store *strstore.StrStore
}

func nodeLoc(n *yaml.Node) loc.Loc {
	return loc.Loc{Line: n.Line, Col: n.Column}
}

// tag returns the single key/value pair of a one-entry mapping node,
// the discriminator shape every expr/pat/ty/dec node in this format
// uses.
func tag(n *yaml.Node) (string, *yaml.Node, error) {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return "", nil, fmt.Errorf("fixture: expected a single-key mapping at line %d", n.Line)
	}
	return n.Content[0].Value, n.Content[1], nil
}

func (b *builder) intern(s string) strstore.ID { return b.store.Intern(s) }

func (b *builder) dec(n *yaml.Node) (ast.Dec, error) {
	l := nodeLoc(n)
	key, val, err := tag(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "val":
		var items []struct {
			Pat  *yaml.Node `yaml:"pat"`
			Expr *yaml.Node `yaml:"expr"`
		}
		if err := val.Decode(&items); err != nil {
			return nil, err
		}
		bindings := make([]ast.ValBind, len(items))
		for i, it := range items {
			p, err := b.pat(it.Pat)
			if err != nil {
				return nil, err
			}
			e, err := b.expr(it.Expr)
			if err != nil {
				return nil, err
			}
			bindings[i] = ast.ValBind{Pat: p, Expr: e}
		}
		d := ast.ValDec{Bindings: bindings}
		d.Loc = l
		return d, nil

	case "type":
		var items []struct {
			TyCon string    `yaml:"tycon"`
			Ty    *yaml.Node `yaml:"ty"`
		}
		if err := val.Decode(&items); err != nil {
			return nil, err
		}
		bindings := make([]ast.TypeBind, len(items))
		for i, it := range items {
			ty, err := b.ty(it.Ty)
			if err != nil {
				return nil, err
			}
			bindings[i] = ast.TypeBind{TyCon: loc.At(l, b.intern(it.TyCon)), Ty: ty}
		}
		d := ast.TypeDec{Bindings: bindings}
		d.Loc = l
		return d, nil

	case "datatype":
		var items []struct {
			TyCon string `yaml:"tycon"`
			Ctors []struct {
				VId string     `yaml:"vid"`
				Arg *yaml.Node `yaml:"arg"`
			} `yaml:"ctors"`
		}
		if err := val.Decode(&items); err != nil {
			return nil, err
		}
		bindings := make([]ast.DatatypeBind, len(items))
		for i, it := range items {
			ctors := make([]ast.CtorBind, len(it.Ctors))
			for j, c := range it.Ctors {
				var arg ast.Ty
				if c.Arg != nil {
					a, err := b.ty(c.Arg)
					if err != nil {
						return nil, err
					}
					arg = a
				}
				ctors[j] = ast.CtorBind{VId: loc.At(l, b.intern(c.VId)), Arg: arg}
			}
			bindings[i] = ast.DatatypeBind{TyCon: loc.At(l, b.intern(it.TyCon)), Ctors: ctors}
		}
		d := ast.DatatypeDec{Bindings: bindings}
		d.Loc = l
		return d, nil

	case "seq":
		if val.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("fixture: seq dec at line %d must be a sequence", l.Line)
		}
		decs := make([]ast.Dec, len(val.Content))
		for i, c := range val.Content {
			d, err := b.dec(c)
			if err != nil {
				return nil, err
			}
			decs[i] = d
		}
		sd := ast.SeqDec{Decs: decs}
		sd.Loc = l
		return sd, nil

	case "infix", "infixr", "nonfix":
		var names []string
		if err := val.Decode(&names); err != nil {
			return nil, err
		}
		vids := make([]loc.Located[ast.VId], len(names))
		for i, name := range names {
			vids[i] = loc.At(l, b.intern(name))
		}
		kind := ast.FixityInfix
		if key == "infixr" {
			kind = ast.FixityInfixr
		} else if key == "nonfix" {
			kind = ast.FixityNonfix
		}
		fd := ast.FixityDec{Kind: kind, VIds: vids}
		fd.Loc = l
		return fd, nil

	default:
		return nil, fmt.Errorf("fixture: unknown declaration kind %q at line %d", key, l.Line)
	}
}

func (b *builder) ty(n *yaml.Node) (ast.Ty, error) {
	l := nodeLoc(n)
	key, val, err := tag(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "tyvar":
		return ast.TyVarTy{Name: b.intern(val.Value)}, nil
	case "record":
		var items []struct {
			Label string     `yaml:"label"`
			Ty    *yaml.Node `yaml:"ty"`
		}
		if err := val.Decode(&items); err != nil {
			return nil, err
		}
		fields := make([]ast.RecordTyField, len(items))
		for i, it := range items {
			ty, err := b.ty(it.Ty)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.RecordTyField{Label: label.OfIdent(b.intern(it.Label)), Ty: ty}
		}
		return ast.RecordTy{Fields: fields}, nil
	case "tuple":
		elems, err := b.tyList(val)
		if err != nil {
			return nil, err
		}
		return ast.TupleTy{Elems: elems}, nil
	case "con":
		var spec struct {
			Name string      `yaml:"name"`
			Args []*yaml.Node `yaml:"args"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		args := make([]ast.Ty, len(spec.Args))
		for i, a := range spec.Args {
			ty, err := b.ty(a)
			if err != nil {
				return nil, err
			}
			args[i] = ty
		}
		return ast.ConTy{Args: args, Con: loc.At(l, b.intern(spec.Name))}, nil
	case "arrow":
		var spec struct {
			Dom *yaml.Node `yaml:"dom"`
			Ran *yaml.Node `yaml:"ran"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		dom, err := b.ty(spec.Dom)
		if err != nil {
			return nil, err
		}
		ran, err := b.ty(spec.Ran)
		if err != nil {
			return nil, err
		}
		return ast.ArrowTy{Dom: dom, Ran: ran}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown type kind %q at line %d", key, l.Line)
	}
}

func (b *builder) tyList(n *yaml.Node) ([]ast.Ty, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("fixture: expected a sequence at line %d", n.Line)
	}
	out := make([]ast.Ty, len(n.Content))
	for i, c := range n.Content {
		ty, err := b.ty(c)
		if err != nil {
			return nil, err
		}
		out[i] = ty
	}
	return out, nil
}

func longVId(b *builder, dotted string, l loc.Loc) ast.LongVId {
	segs, leaf := splitDotted(dotted)
	strids := make([]loc.Located[ast.StrId], len(segs))
	for i, s := range segs {
		strids[i] = loc.At(l, b.intern(s))
	}
	return ast.LongVId{StrIds: strids, VId: loc.At(l, b.intern(leaf))}
}

func splitDotted(s string) ([]string, string) {
	var segs []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			segs = append(segs, s[start:i])
			start = i + 1
		}
	}
	return segs, s[start:]
}

func (b *builder) expr(n *yaml.Node) (ast.Expr, error) {
	l := nodeLoc(n)
	key, val, err := tag(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "int":
		var v int64
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		return ast.SConExpr{Lit: ast.Lit{Kind: ast.LitDecInt, Int: v}}, nil
	case "word":
		var v int64
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		return ast.SConExpr{Lit: ast.Lit{Kind: ast.LitDecWord, Int: v}}, nil
	case "real":
		var v float64
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		return ast.SConExpr{Lit: ast.Lit{Kind: ast.LitReal, Real: v}}, nil
	case "str":
		var v string
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		return ast.SConExpr{Lit: ast.Lit{Kind: ast.LitStr, Str: b.intern(v)}}, nil
	case "char":
		var v string
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		if len(v) == 0 {
			return nil, fmt.Errorf("fixture: empty char literal at line %d", l.Line)
		}
		return ast.SConExpr{Lit: ast.Lit{Kind: ast.LitChar, Char: v[0]}}, nil
	case "var":
		return ast.LongVIdExpr{Id: longVId(b, val.Value, l)}, nil
	case "record":
		var items []struct {
			Label string     `yaml:"label"`
			Expr  *yaml.Node `yaml:"expr"`
		}
		if err := val.Decode(&items); err != nil {
			return nil, err
		}
		fields := make([]ast.RecordExprField, len(items))
		for i, it := range items {
			e, err := b.expr(it.Expr)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.RecordExprField{Label: label.OfIdent(b.intern(it.Label)), Expr: e}
		}
		return ast.RecordExpr{Fields: fields}, nil
	case "tuple":
		elems, err := b.exprList(val)
		if err != nil {
			return nil, err
		}
		return ast.TupleExpr{Elems: elems}, nil
	case "list":
		elems, err := b.exprList(val)
		if err != nil {
			return nil, err
		}
		return ast.ListExpr{Elems: elems}, nil
	case "seq":
		elems, err := b.exprList(val)
		if err != nil {
			return nil, err
		}
		return ast.SequenceExpr{Elems: elems}, nil
	case "let":
		var spec struct {
			Dec  *yaml.Node   `yaml:"dec"`
			Body []*yaml.Node `yaml:"body"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		d, err := b.dec(spec.Dec)
		if err != nil {
			return nil, err
		}
		body := make([]ast.Expr, len(spec.Body))
		for i, n := range spec.Body {
			e, err := b.expr(n)
			if err != nil {
				return nil, err
			}
			body[i] = e
		}
		return ast.LetExpr{Dec: d, Elems: body}, nil
	case "app":
		var spec struct {
			Func *yaml.Node `yaml:"func"`
			Arg  *yaml.Node `yaml:"arg"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		fn, err := b.expr(spec.Func)
		if err != nil {
			return nil, err
		}
		arg, err := b.expr(spec.Arg)
		if err != nil {
			return nil, err
		}
		return ast.AppExpr{Func: fn, Arg: arg}, nil
	case "infix":
		var spec struct {
			Left  *yaml.Node `yaml:"left"`
			Op    string     `yaml:"op"`
			Right *yaml.Node `yaml:"right"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		left, err := b.expr(spec.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.expr(spec.Right)
		if err != nil {
			return nil, err
		}
		return ast.InfixAppExpr{Left: left, VId: loc.At(l, b.intern(spec.Op)), Right: right}, nil
	case "typed":
		var spec struct {
			Expr *yaml.Node `yaml:"expr"`
			Ty   *yaml.Node `yaml:"ty"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		e, err := b.expr(spec.Expr)
		if err != nil {
			return nil, err
		}
		ty, err := b.ty(spec.Ty)
		if err != nil {
			return nil, err
		}
		return ast.TypedExpr{Expr: e, Ty: ty}, nil
	case "andalso", "orelse":
		var spec struct {
			Left  *yaml.Node `yaml:"left"`
			Right *yaml.Node `yaml:"right"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		left, err := b.expr(spec.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.expr(spec.Right)
		if err != nil {
			return nil, err
		}
		if key == "andalso" {
			return ast.AndalsoExpr{Left: left, Right: right}, nil
		}
		return ast.OrelseExpr{Left: left, Right: right}, nil
	case "handle":
		var spec struct {
			Expr  *yaml.Node   `yaml:"expr"`
			Cases []*yaml.Node `yaml:"cases"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		e, err := b.expr(spec.Expr)
		if err != nil {
			return nil, err
		}
		cases, err := b.caseList(spec.Cases)
		if err != nil {
			return nil, err
		}
		return ast.HandleExpr{Expr: e, Cases: cases}, nil
	case "raise":
		e, err := b.expr(val)
		if err != nil {
			return nil, err
		}
		return ast.RaiseExpr{Expr: e}, nil
	case "if":
		var spec struct {
			Cond *yaml.Node `yaml:"cond"`
			Then *yaml.Node `yaml:"then"`
			Else *yaml.Node `yaml:"else"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		cond, err := b.expr(spec.Cond)
		if err != nil {
			return nil, err
		}
		then, err := b.expr(spec.Then)
		if err != nil {
			return nil, err
		}
		els, err := b.expr(spec.Else)
		if err != nil {
			return nil, err
		}
		return ast.IfExpr{Cond: cond, Then: then, Else: els}, nil
	case "case":
		var spec struct {
			Expr  *yaml.Node   `yaml:"expr"`
			Cases []*yaml.Node `yaml:"cases"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		e, err := b.expr(spec.Expr)
		if err != nil {
			return nil, err
		}
		cases, err := b.caseList(spec.Cases)
		if err != nil {
			return nil, err
		}
		return ast.CaseExpr{Expr: e, Cases: cases}, nil
	case "fn":
		cases, err := b.caseList(val.Content)
		if err != nil {
			return nil, err
		}
		return ast.FnExpr{Cases: cases}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown expression kind %q at line %d", key, l.Line)
	}
}

func (b *builder) exprList(n *yaml.Node) ([]ast.Expr, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("fixture: expected a sequence at line %d", n.Line)
	}
	out := make([]ast.Expr, len(n.Content))
	for i, c := range n.Content {
		e, err := b.expr(c)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}

func (b *builder) caseList(nodes []*yaml.Node) ([]ast.Case, error) {
	out := make([]ast.Case, len(nodes))
	for i, n := range nodes {
		var spec struct {
			Pat  *yaml.Node `yaml:"pat"`
			Expr *yaml.Node `yaml:"expr"`
		}
		if err := n.Decode(&spec); err != nil {
			return nil, err
		}
		p, err := b.pat(spec.Pat)
		if err != nil {
			return nil, err
		}
		e, err := b.expr(spec.Expr)
		if err != nil {
			return nil, err
		}
		out[i] = ast.Case{Pat: p, Expr: e}
	}
	return out, nil
}

func (b *builder) pat(n *yaml.Node) (ast.Pat, error) {
	l := nodeLoc(n)
	key, val, err := tag(n)
	if err != nil {
		return nil, err
	}
	switch key {
	case "wildcard":
		return ast.WildcardPat{}, nil
	case "int":
		var v int64
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		return ast.SConPat{Lit: ast.Lit{Kind: ast.LitDecInt, Int: v}}, nil
	case "str":
		var v string
		if err := val.Decode(&v); err != nil {
			return nil, err
		}
		return ast.SConPat{Lit: ast.Lit{Kind: ast.LitStr, Str: b.intern(v)}}, nil
	case "var":
		return ast.LongVIdPat{Id: longVId(b, val.Value, l)}, nil
	case "record":
		var items []struct {
			Label string     `yaml:"label"`
			Pat   *yaml.Node `yaml:"pat"`
		}
		if err := val.Decode(&items); err != nil {
			return nil, err
		}
		fields := make([]ast.RecordPatField, len(items))
		for i, it := range items {
			p, err := b.pat(it.Pat)
			if err != nil {
				return nil, err
			}
			fields[i] = ast.RecordPatField{Label: label.OfIdent(b.intern(it.Label)), Pat: p}
		}
		return ast.RecordPat{Fields: fields}, nil
	case "tuple":
		elems, err := b.patList(val)
		if err != nil {
			return nil, err
		}
		return ast.TuplePat{Elems: elems}, nil
	case "list":
		elems, err := b.patList(val)
		if err != nil {
			return nil, err
		}
		return ast.ListPat{Elems: elems}, nil
	case "ctor":
		var spec struct {
			VId string     `yaml:"vid"`
			Arg *yaml.Node `yaml:"arg"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		arg, err := b.pat(spec.Arg)
		if err != nil {
			return nil, err
		}
		return ast.CtorPat{Ctor: longVId(b, spec.VId, l), Arg: arg}, nil
	case "infixctor":
		var spec struct {
			Left  *yaml.Node `yaml:"left"`
			VId   string     `yaml:"vid"`
			Right *yaml.Node `yaml:"right"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		left, err := b.pat(spec.Left)
		if err != nil {
			return nil, err
		}
		right, err := b.pat(spec.Right)
		if err != nil {
			return nil, err
		}
		return ast.InfixCtorPat{Left: left, Ctor: loc.At(l, b.intern(spec.VId)), Right: right}, nil
	case "typed":
		var spec struct {
			Pat *yaml.Node `yaml:"pat"`
			Ty  *yaml.Node `yaml:"ty"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		p, err := b.pat(spec.Pat)
		if err != nil {
			return nil, err
		}
		ty, err := b.ty(spec.Ty)
		if err != nil {
			return nil, err
		}
		return ast.TypedPat{Pat: p, Ty: ty}, nil
	case "as":
		var spec struct {
			VId string     `yaml:"vid"`
			Ty  *yaml.Node `yaml:"ty"`
			Pat *yaml.Node `yaml:"pat"`
		}
		if err := val.Decode(&spec); err != nil {
			return nil, err
		}
		var ty ast.Ty
		if spec.Ty != nil {
			t, err := b.ty(spec.Ty)
			if err != nil {
				return nil, err
			}
			ty = t
		}
		p, err := b.pat(spec.Pat)
		if err != nil {
			return nil, err
		}
		return ast.AsPat{VId: loc.At(l, b.intern(spec.VId)), Ty: ty, Pat: p}, nil
	default:
		return nil, fmt.Errorf("fixture: unknown pattern kind %q at line %d", key, l.Line)
	}
}

func (b *builder) patList(n *yaml.Node) ([]ast.Pat, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("fixture: expected a sequence at line %d", n.Line)
	}
	out := make([]ast.Pat, len(n.Content))
	for i, c := range n.Content {
		p, err := b.pat(c)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
