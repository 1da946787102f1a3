package parse

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/typeinfo"
)

// defaultScope is where a default expression is evaluated: the scope of a
// function body before any statement. Parameters and results are visible
// there but must not be referred to.
type defaultScope struct {
	fd *ast.FuncDecl

	// vars maps the parameters, the receiver, and the results to their
	// descriptions for errors.
	vars map[types.Object]string
}

func (p *Parser) newDefaultScope(fd *ast.FuncDecl) *defaultScope {
	s := &defaultScope{fd: fd, vars: make(map[types.Object]string)}
	add := func(fields *ast.FieldList, what string) {
		if fields == nil {
			return
		}
		for _, f := range fields.List {
			for _, name := range f.Names {
				if obj := p.pkg.TypesInfo.Defs[name]; obj != nil {
					s.vars[obj] = what + " " + name.Name
				}
			}
		}
	}
	add(fd.Recv, "receiver")
	add(fd.Type.Params, "parameter")
	add(fd.Type.Results, "result")
	return s
}

// parseDefault parses the expression of a default directive and type-checks
// it against the parameter.
//
// The expression is parsed into a file of its own in the file set of the
// package, so its nodes are not positioned in the source file. Errors are
// mapped back into the directive.
func (p *Parser) parseDefault(d *Directive, scope *defaultScope, param *types.Var) (ast.Expr, error) {
	src, pos := d.Expr()
	span := codefmt.Span(pos, pos+token.Pos(len(src)))
	fset := p.pkg.Fset

	filename := fset.Position(pos).Filename
	expr, err := parser.ParseExprFrom(fset, filename, src, 0)
	if err != nil {
		var list scanner.ErrorList
		if errors.As(err, &list) && len(list) != 0 {
			at := pos + token.Pos(list[0].Pos.Offset)
			return nil, codefmt.Errorf(p, codefmt.Pos(at), "invalid default expression: %s", list[0].Msg)
		}
		return nil, codefmt.Errorf(p, span, "invalid default expression: %s", err.Error())
	}

	// Positions in the expression file map to the directive by offset.
	base := token.Pos(fset.File(expr.Pos()).Base())
	mapPos := func(x token.Pos) token.Pos { return pos + (x - base) }

	if scope.fd.Body == nil {
		// A declaration without body is rejected by the signature builder.
		return expr, nil
	}

	info := p.pkg.TypesInfo
	if err := types.CheckExpr(fset, p.pkg.Types, scope.fd.Body.Lbrace, expr, info); err != nil {
		var terr types.Error
		if errors.As(err, &terr) {
			return nil, codefmt.Errorf(p, codefmt.Pos(mapPos(terr.Pos)), "invalid default expression: %s", terr.Msg)
		}
		return nil, codefmt.Errorf(p, span, "invalid default expression: %s", err.Error())
	}

	var errs error
	ast.Inspect(expr, func(n ast.Node) bool {
		id, ok := n.(*ast.Ident)
		if !ok {
			return true
		}
		if what, ok := scope.vars[info.Uses[id]]; ok {
			err := codefmt.Errorf(p, codefmt.Span(mapPos(id.Pos()), mapPos(id.End())), "default expression must not refer to %s", what)
			errs = errors.Join(errs, err)
		}
		return true
	})
	if errs != nil {
		return nil, errs
	}

	tv := info.Types[expr]
	if !tv.IsValue() {
		return nil, codefmt.Errorf(p, span, "default expression %s is not a value", src)
	}
	if !typeinfo.AssignableTo(tv.Type, param.Type()) {
		return nil, codefmt.Errorf(p, span, "cannot use %s (%s) as %s value in default of parameter %s",
			src, codefmt.FormatType(p, tv.Type), codefmt.FormatType(p, param.Type()), param.Name())
	}
	return expr, nil
}
