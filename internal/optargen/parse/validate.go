package parse

import (
	"errors"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/sublee/optargen/internal/codefmt"
)

// Validate checks for usages outside expected paths. It collects all errors
// instead of stopping at the first error.
//
// Most rules are checked while parsing annotated functions. But some rules
// need to be checked globally. That's what this function does.
func (p *Parser) Validate(decls []*Decl) error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
	}
	errs = errors.Join(errs, p.validateDirectUses(decls))
	return errs
}

// validateConstraint checks if files having optargen directives have the
// "//go:build optargen" constraint.
func (p *Parser) validateConstraint(file *ast.File) error {
	if HasGoBuildOptargen(file) {
		return nil // Constraint satisfied
	}

	var errs error
	for _, group := range file.Comments {
		for _, c := range group.List {
			if IsDirective(c) {
				err := codefmt.Errorf(p, c, `file must have "//go:build optargen" constraint to use optargen directives`)
				errs = errors.Join(errs, err)
			}
		}
	}
	return errs
}

// validateDirectUses checks illegal references to annotated functions.
//
// An annotated function is replaced by an entry point which takes only the
// required parameters and returns a builder. Code in optargen files is
// written against the original signature, so any reference to it would break
// after code generation. A free function may still call itself in its body
// because the body is kept as it is in the terminal.
func (p *Parser) validateDirectUses(decls []*Decl) error {
	annotated := make(map[*types.Func]*Decl)
	for _, d := range decls {
		annotated[d.Obj] = d
	}
	if len(annotated) == 0 {
		return nil
	}

	var errs error
	check := func(c *astutil.Cursor, within *Decl) bool {
		id, ok := c.Node().(*ast.Ident)
		if !ok {
			return true
		}

		fn, ok := p.pkg.TypesInfo.Uses[id].(*types.Func)
		if !ok {
			return false
		}
		d, ok := annotated[fn.Origin()]
		if !ok {
			return false
		}

		if d == within && isRecursion(d, id, c) {
			// Recursive call in the body. That's fine.
			return false
		}

		err := codefmt.Errorf(p, id, "cannot use %s directly; optargen replaces it with an entry point returning *%s", d.Name.Name, d.Builder.Name)
		errs = errors.Join(errs, err)
		return false
	}

	for _, file := range p.OptargenGoFiles() {
		for _, decl := range file.Decls {
			var within *Decl
			if fd, ok := decl.(*ast.FuncDecl); ok {
				if obj, ok := p.pkg.TypesInfo.Defs[fd.Name].(*types.Func); ok {
					within = annotated[obj]
				}
			}
			astutil.Apply(decl, func(c *astutil.Cursor) bool {
				return check(c, within)
			}, nil)
		}
	}

	// Default expressions are not part of the syntax of the package.
	for _, d := range decls {
		for _, f := range d.Params {
			for _, a := range f.Annotations {
				if a.Default == nil {
					continue
				}
				astutil.Apply(a.Default, func(c *astutil.Cursor) bool {
					return check(c, nil)
				}, nil)
			}
		}
	}

	return errs
}

// isRecursion reports whether the identifier is a recursive call of a free
// function within its body. An explicit instantiation is not, because the
// body is kept as a non-generic function literal.
func isRecursion(d *Decl, id *ast.Ident, c *astutil.Cursor) bool {
	if d.Recv != nil || d.Body == nil {
		return false
	}
	if id.Pos() < d.Body.Pos() || d.Body.End() <= id.Pos() {
		return false
	}
	switch c.Parent().(type) {
	case *ast.IndexExpr, *ast.IndexListExpr:
		return c.Name() != "X"
	}
	return true
}
