// Package emit writes synthesized declarations as Go code.
package emit

import (
	"go/ast"
	"strings"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/optargen/sig"
	"github.com/sublee/optargen/internal/optargen/synth"
	"github.com/sublee/optargen/internal/typeinfo"
)

// Marker writes the no-copy marker type. go vet reports copies of a struct
// which contains a value with Lock and Unlock methods.
func Marker(w *codefmt.Writer, name string) {
	w.Printf("// %s marks builders which must not be copied.\n", name)
	w.Printf("type %s struct{}\n\n", name)
	w.Printf("func (*%s) Lock()   {}\n", name)
	w.Printf("func (*%s) Unlock() {}\n", name)
}

// Decls writes the declarations in the order of the builder type, the
// setters, the terminal, and the entry point.
func Decls(w *codefmt.Writer, d *synth.Decls) error {
	e := &emitter{w: w, d: d}
	e.writeType()
	for _, s := range d.Setters {
		e.printf("\n\n")
		e.writeSetter(s)
	}
	e.printf("\n\n")
	e.writeTerminal()
	e.printf("\n\n")
	e.writeEntry()
	return e.err
}

type emitter struct {
	w   *codefmt.Writer
	d   *synth.Decls
	err error
}

func (e *emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = e.w.Printf(format, args...)
}

func (e *emitter) node(node ast.Node, comments []*ast.CommentGroup) {
	if e.err != nil {
		return
	}
	e.err = e.w.Node(node, comments)
}

// typ writes the type of a parameter as a value. A variadic parameter is a
// slice.
func (e *emitter) typ(p *sig.Parameter) {
	if p.Variadic {
		e.printf("[]")
	}
	e.node(p.Type, nil)
}

// typeParams writes a type parameter list with constraints.
func (e *emitter) typeParams(tps []typeinfo.TypeParam) {
	if len(tps) == 0 {
		return
	}
	e.printf("[")
	for i, tp := range tps {
		if i != 0 {
			e.printf(", ")
		}
		e.printf("%s %t", tp.Name, tp.Constraint)
	}
	e.printf("]")
}

// builderType returns the instantiated builder type, e.g., "*Builder[T]".
func (e *emitter) builderType() string {
	t := e.d.Type
	if len(t.TypeParams) == 0 {
		return "*" + t.Name
	}
	names := make([]string, len(t.TypeParams))
	for i, tp := range t.TypeParams {
		names[i] = tp.Name
	}
	return "*" + t.Name + "[" + strings.Join(names, ", ") + "]"
}

// target returns the name of the original function for doc comments, e.g.,
// "JoinStrings" or "Vec.GetOr".
func (e *emitter) target() string {
	s := e.d.Sig
	if recv := s.Recv(); recv != nil {
		return recvTypeName(recv.Type) + "." + s.Name
	}
	return s.Name
}

func recvTypeName(expr ast.Expr) string {
	switch expr := expr.(type) {
	case *ast.StarExpr:
		return recvTypeName(expr.X)
	case *ast.ParenExpr:
		return recvTypeName(expr.X)
	case *ast.IndexExpr:
		return recvTypeName(expr.X)
	case *ast.IndexListExpr:
		return recvTypeName(expr.X)
	case *ast.Ident:
		return expr.Name
	}
	return "?"
}

func (e *emitter) writeType() {
	t := e.d.Type
	e.printf("// %s builds a call of %s. Set optional parameters by its setters and\n", t.Name, e.target())
	e.printf("// then call %s.\n", e.d.Sig.Terminal)
	e.printf("type %s", t.Name)
	e.typeParams(t.TypeParams)
	e.printf(" struct {\n")
	e.printf("_ %s\n", t.Marker)
	for _, f := range t.Required {
		e.printf("%s ", f.Name)
		e.typ(f.Param)
		e.printf("\n")
	}
	for _, f := range t.Optional {
		e.printf("%s *", f.Name)
		e.typ(f.Param)
		e.printf("\n")
	}
	e.printf("%s bool\n", t.Guard)
	e.printf("}")
}

// guard writes the statement which rejects a consumed builder.
func (e *emitter) guard() {
	t := e.d.Type
	e.printf("if %s.%s {\n", t.Recv, t.Guard)
	e.printf("panic(%q)\n", "optargen: "+t.Name+" used after "+e.d.Sig.Terminal)
	e.printf("}\n")
}

func (e *emitter) writeSetter(s *synth.SetterDecl) {
	t := e.d.Type
	p := s.Field.Param

	e.printf("// %s sets the optional parameter %s of %s. If it is not set,\n", s.Name, p.Name, e.target())
	if p.Role == sig.DefaultExpression {
		e.printf("// %s defaults to %s.\n", p.Name, codefmt.FormatExpr(e.w, p.Default))
	} else {
		e.printf("// %s is the zero value.\n", p.Name)
	}

	e.printf("func (%s %s) %s(%s ", t.Recv, e.builderType(), s.Name, s.Arg)
	if p.Variadic {
		e.printf("...")
	}
	e.node(p.Type, nil)
	e.printf(") %s {\n", e.builderType())
	e.guard()
	e.printf("%s.%s = &%s\n", t.Recv, s.Field.Name, s.Arg)
	e.printf("return %s\n", t.Recv)
	e.printf("}")
}

// funcType returns the type of the original body as a function literal.
func (e *emitter) funcType() *ast.FuncType {
	params := &ast.FieldList{}
	for _, p := range e.d.Terminal.Params {
		typ := p.Type
		if p.Variadic {
			typ = &ast.Ellipsis{Elt: p.Type}
		}
		params.List = append(params.List, &ast.Field{
			Names: []*ast.Ident{ast.NewIdent(p.Name)},
			Type:  typ,
		})
	}
	return &ast.FuncType{Params: params, Results: e.d.Terminal.Results}
}

// results writes the result types of the terminal. Result names are
// dropped so that they do not shadow anything.
func (e *emitter) results() {
	results := e.d.Terminal.Results
	if results == nil || len(results.List) == 0 {
		return
	}

	var types []ast.Expr
	for _, f := range results.List {
		n := max(len(f.Names), 1)
		for range n {
			types = append(types, f.Type)
		}
	}

	e.printf(" ")
	if len(types) > 1 {
		e.printf("(")
	}
	for i, typ := range types {
		if i != 0 {
			e.printf(", ")
		}
		e.node(typ, nil)
	}
	if len(types) > 1 {
		e.printf(")")
	}
}

func (e *emitter) writeTerminal() {
	t := e.d.Type
	term := e.d.Terminal
	s := e.d.Sig

	e.printf("// %s calls %s with the parameters set so far. Parameters not set\n", term.Name, e.target())
	e.printf("// fall back to their defaults. A builder can be executed only once.\n")
	e.printf("func (%s %s) %s()", t.Recv, e.builderType(), term.Name)
	e.results()
	e.printf(" {\n")

	e.guard()
	e.printf("%s.%s = true\n\n", t.Recv, t.Guard)

	var comments []*ast.CommentGroup
	if s.File != nil {
		comments = s.File.Comments
	}
	if term.Recursive {
		e.printf("var %s ", term.Inner)
		e.node(e.funcType(), nil)
		e.printf("\n%s = ", term.Inner)
	} else {
		e.printf("%s := ", term.Inner)
	}
	e.node(e.funcType(), nil)
	e.printf(" ")
	e.node(term.Body, comments)
	e.printf("\n\n")

	for _, l := range term.Locals {
		p := l.Field.Param
		e.printf("var %s ", l.Name)
		e.typ(p)
		e.printf("\n")
		e.printf("if %s.%s != nil {\n", t.Recv, l.Field.Name)
		e.printf("%s = *%s.%s\n", l.Name, t.Recv, l.Field.Name)
		if p.Role == sig.DefaultExpression {
			e.printf("} else {\n")
			e.printf("%s = ", l.Name)
			e.node(p.Default, nil)
			e.printf("\n")
		}
		e.printf("}\n\n")
	}

	if e.hasResults() {
		e.printf("return ")
	}
	e.printf("%s(", term.Inner)
	for i, arg := range term.Args {
		if i != 0 {
			e.printf(", ")
		}
		e.printf("%s", arg)
	}
	if s.IsVariadic() {
		e.printf("...")
	}
	e.printf(")\n")
	e.printf("}")
}

func (e *emitter) hasResults() bool {
	results := e.d.Terminal.Results
	return results != nil && len(results.List) != 0
}

func (e *emitter) writeEntry() {
	entry := e.d.Entry

	for _, c := range entry.Doc {
		e.printf("%s\n", c.Text)
	}

	e.printf("func ")
	if entry.Recv != nil {
		e.printf("(%s ", entry.Recv.Name)
		e.node(entry.Recv.Type, nil)
		e.printf(") ")
	}
	e.printf("%s", entry.Name)
	e.typeParams(entry.TypeParams)
	e.printf("(")
	for i, p := range entry.Params {
		if i != 0 {
			e.printf(", ")
		}
		e.printf("%s ", p.Name)
		if p.Variadic {
			e.printf("...")
		}
		e.node(p.Type, nil)
	}
	e.printf(") %s {\n", e.builderType())

	e.printf("return &%s{", strings.TrimPrefix(e.builderType(), "*"))
	for i, f := range entry.Fields {
		if i != 0 {
			e.printf(", ")
		}
		e.printf("%s: %s", f.Name, f.Param.Name)
	}
	e.printf("}\n")
	e.printf("}")
}
