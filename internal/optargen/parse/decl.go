package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/optargen/sig"
	"github.com/sublee/optargen/internal/typeinfo"
)

// Decl is a function declaration annotated by a builder directive.
type Decl struct {
	*sig.Decl

	Func *ast.FuncDecl
	Obj  *types.Func
}

func (d *Decl) Pos() token.Pos { return d.Func.Pos() }
func (d *Decl) End() token.Pos { return d.Func.End() }

// qualifierKinds are Go directives which forbid wrapping a function.
var qualifierKinds = map[string]sig.QualifierKind{
	"//export":             sig.Linkage,
	"//go:linkname":        sig.Linkage,
	"//go:wasmimport":      sig.Linkage,
	"//go:wasmexport":      sig.Linkage,
	"//go:noescape":        sig.Linkage,
	"//go:nosplit":         sig.UncheckedMemory,
	"//go:nocheckptr":      sig.UncheckedMemory,
	"//go:uintptrescapes":  sig.UncheckedMemory,
	"//go:norace":          sig.UncheckedMemory,
	"//go:systemstack":     sig.UncheckedMemory,
	"//go:nowritebarrier":  sig.UncheckedMemory,
	"//go:cgo_unsafe_args": sig.UncheckedMemory,
}

// ParseDecls parses all functions annotated by builder directives in the
// optargen files. Every directive in the files must be consumed by an
// annotated function. Errors are collected over all files.
func (p *Parser) ParseDecls() ([]*Decl, error) {
	var decls []*Decl
	var errs error
	for _, file := range p.OptargenGoFiles() {
		ds, err := p.parseFile(file)
		decls = append(decls, ds...)
		errs = errors.Join(errs, err)
	}
	return decls, errs
}

// fileDirectives holds the directives of a file and tracks which of them are
// consumed.
type fileDirectives struct {
	list   []*Directive
	byC    map[*ast.Comment]*Directive
	used   map[*Directive]bool
	broken map[*ast.Comment]bool
}

// within returns the directives between pos and end.
func (ds *fileDirectives) within(pos, end token.Pos) []*Directive {
	var within []*Directive
	for _, d := range ds.list {
		if pos <= d.Pos() && d.Pos() < end {
			within = append(within, d)
		}
	}
	return within
}

// suppress marks the directives between pos and end as consumed without
// parsing them. It avoids cascading errors after a broken builder directive.
func (ds *fileDirectives) suppress(pos, end token.Pos) {
	for _, d := range ds.within(pos, end) {
		ds.used[d] = true
	}
}

func (p *Parser) parseFile(file *ast.File) ([]*Decl, error) {
	var errs error

	dirs := &fileDirectives{
		byC:    make(map[*ast.Comment]*Directive),
		used:   make(map[*Directive]bool),
		broken: make(map[*ast.Comment]bool),
	}
	for _, group := range file.Comments {
		for _, c := range group.List {
			d, err := p.ParseDirective(c)
			if err != nil {
				errs = errors.Join(errs, err)
				dirs.broken[c] = true
				continue
			}
			if d != nil {
				dirs.list = append(dirs.list, d)
				dirs.byC[c] = d
			}
		}
	}

	var decls []*Decl
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok {
			continue
		}
		d, err := p.parseFunc(file, fd, dirs)
		errs = errors.Join(errs, err)
		if d != nil {
			decls = append(decls, d)
		}
	}

	for _, d := range dirs.list {
		if dirs.used[d] {
			continue
		}
		var err error
		if d.Kind == KindBuilder {
			err = codefmt.Errorf(p, d, "misplaced %s; it must be in the doc comment of a function", d.Name())
		} else {
			err = codefmt.Errorf(p, d, "misplaced %s; it must annotate a parameter of a function with //optargen:builder", d.Name())
		}
		errs = errors.Join(errs, err)
	}

	return decls, errs
}

// parseFunc parses a function declaration if it is annotated by a builder
// directive. It returns nil without error if it is not annotated.
func (p *Parser) parseFunc(file *ast.File, fd *ast.FuncDecl, dirs *fileDirectives) (*Decl, error) {
	var errs error

	var builder *Directive
	broken := false
	if fd.Doc != nil {
		for _, c := range fd.Doc.List {
			broken = broken || dirs.broken[c]
			d, ok := dirs.byC[c]
			if !ok || d.Kind != KindBuilder {
				continue
			}
			dirs.used[d] = true
			if builder != nil {
				errs = errors.Join(errs, codefmt.Errorf(p, d, "duplicate %s for %s", d.Name(), fd.Name.Name))
				continue
			}
			builder = d
		}
	}
	if builder == nil {
		if broken {
			dirs.suppress(fd.Pos(), fd.End())
		}
		return nil, errs
	}

	obj, ok := p.pkg.TypesInfo.Defs[fd.Name].(*types.Func)
	if !ok {
		return nil, errors.Join(errs, codefmt.Errorf(p, fd.Name, "cannot resolve function %s", fd.Name.Name))
	}
	fn, err := typeinfo.FuncOf(obj)
	if err != nil {
		return nil, errors.Join(errs, codefmt.Errorf(p, fd.Name, "%s", err.Error()))
	}

	decl := &Decl{
		Decl: &sig.Decl{
			Name:           fd.Name,
			TypeParams:     fn.TypeParams(),
			RecvTypeParams: fn.RecvTypeParams(),
			Results:        fd.Type.Results,
			Builder:        &ast.Ident{Name: builder.Args[0].Text, NamePos: builder.Args[0].Pos},
			Terminal:       &ast.Ident{Name: builder.Args[1].Text, NamePos: builder.Args[1].Pos},
			Doc:            fd.Doc,
			Body:           fd.Body,
			File:           file,
			Qualifiers:     qualifiers(file, fd),
		},
		Func: fd,
		Obj:  obj,
	}

	if fd.Recv != nil && len(fd.Recv.List) != 0 {
		f := fd.Recv.List[0]
		decl.Recv = &sig.Field{Type: f.Type, Pos: f.Pos()}
		if len(f.Names) != 0 {
			decl.Recv.Name = f.Names[0]
		}

		for _, d := range dirs.within(fd.Recv.Pos(), fd.Recv.End()) {
			dirs.used[d] = true
			errs = errors.Join(errs, codefmt.Errorf(p, d, "%s cannot annotate the receiver", d.Name()))
		}
	}

	params, err := p.parseParams(fd, fn, dirs)
	errs = errors.Join(errs, err)
	decl.Params = params

	if errs != nil {
		return nil, errs
	}
	return decl, nil
}

// parseParams converts the parameter fields with their annotations.
func (p *Parser) parseParams(fd *ast.FuncDecl, fn typeinfo.Func, dirs *fileDirectives) ([]*sig.Field, error) {
	var errs error

	fields := fd.Type.Params.List
	attached := make(map[*ast.Field][]*Directive)
	for _, d := range dirs.within(fd.Type.Params.Opening, fd.Type.Params.Closing) {
		f := p.attach(fields, d)
		if f == nil {
			// Not consumed. Reported as misplaced.
			continue
		}
		dirs.used[d] = true
		if d.Kind == KindBuilder {
			errs = errors.Join(errs, codefmt.Errorf(p, d, "%s must be in the doc comment of a function, not on a parameter", d.Name()))
			continue
		}
		attached[f] = append(attached[f], d)
	}

	scope := p.newDefaultScope(fd)
	vars := fn.Params()
	failed := make(map[*Directive]bool)

	var params []*sig.Field
	for _, f := range fields {
		names := f.Names
		if len(names) == 0 {
			names = []*ast.Ident{nil}
		}

		for _, name := range names {
			v := vars[len(params)]

			field := &sig.Field{Name: name, Type: f.Type, Pos: f.Pos()}
			if name != nil {
				field.Pos = name.Pos()
			}

			for _, d := range attached[f] {
				if failed[d] {
					continue
				}

				a := sig.Annotation{Role: sig.DefaultValue, Pos: d.Pos()}
				if d.Kind == KindDefault {
					// Each name gets its own expression so that emitted
					// code does not share nodes.
					expr, err := p.parseDefault(d, scope, v)
					if err != nil {
						errs = errors.Join(errs, err)
						failed[d] = true
						continue
					}
					a.Role = sig.DefaultExpression
					a.Default = expr
				}
				field.Annotations = append(field.Annotations, a)
			}

			params = append(params, field)
		}
	}

	return params, errs
}

// attach finds the parameter field which a directive annotates. A directive
// annotates the field which ends on the same line before it. Otherwise, it
// annotates the next field.
//
//	func F(
//		a int, //optargen:zero
//		//optargen:default 42
//		b int,
//	)
//
// It returns nil if the directive is inside a field, or no field follows.
func (p *Parser) attach(fields []*ast.Field, d *Directive) *ast.Field {
	fset := p.pkg.Fset
	line := fset.Position(d.Pos()).Line

	var prev *ast.Field
	for _, f := range fields {
		if f.Pos() <= d.Pos() && d.Pos() < f.End() {
			return nil
		}
		if f.End() <= d.Pos() {
			prev = f
			continue
		}
		if prev != nil && fset.Position(prev.End()).Line == line {
			return prev
		}
		return f
	}
	if prev != nil && fset.Position(prev.End()).Line == line {
		return prev
	}
	return nil
}

// qualifiers finds qualifiers of a function which forbid wrapping it.
func qualifiers(file *ast.File, fd *ast.FuncDecl) []sig.Qualifier {
	var qs []sig.Qualifier
	if fd.Doc != nil {
		for _, c := range fd.Doc.List {
			word, _, _ := strings.Cut(c.Text, " ")
			if kind, ok := qualifierKinds[word]; ok {
				qs = append(qs, sig.Qualifier{Text: word, Kind: kind, Pos: c.Pos()})
			}
		}
	}

	// "//go:linkname localname importpath.name" may be anywhere in the file.
	if fd.Recv == nil {
		for _, group := range file.Comments {
			if group == fd.Doc {
				continue
			}
			for _, c := range group.List {
				fields := strings.Fields(c.Text)
				if len(fields) >= 2 && fields[0] == "//go:linkname" && fields[1] == fd.Name.Name {
					qs = append(qs, sig.Qualifier{Text: fields[0], Kind: sig.Linkage, Pos: c.Pos()})
				}
			}
		}
	}

	if fd.Body == nil {
		qs = append(qs, sig.Qualifier{Text: "declaration without body", Kind: sig.Linkage, Pos: fd.Name.Pos()})
	}
	if fd.Recv == nil && fd.Name.Name == "init" {
		qs = append(qs, sig.Qualifier{Text: "func init", Kind: sig.InitOnly, Pos: fd.Name.Pos()})
	}
	return qs
}
