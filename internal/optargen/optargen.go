package optargeninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"maps"
	"path/filepath"
	"slices"

	"golang.org/x/tools/go/packages"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/optargen/emit"
	"github.com/sublee/optargen/internal/optargen/parse"
	"github.com/sublee/optargen/internal/optargen/sig"
	"github.com/sublee/optargen/internal/optargen/synth"
)

// markerName is the preferred name of the no-copy marker type.
const markerName = "optargenNoCopy"

// Optargen generates builders for the target package. Call [Build] and then
// [Generate] to get the generated code. All potential errors in user code are
// returned by [Build].
type Optargen struct {
	p   *parse.Parser
	ns  codefmt.NS
	buf *bytes.Buffer
	w   *codefmt.Writer

	marker string
	decls  map[*ast.FuncDecl]*synth.Decls
}

// New creates a new [Optargen] for the given package. If the package does not
// satisfy the requirements, an error is returned. The package must have its
// Syntax, Types and TypesInfo.
func New(pkg *packages.Package) (*Optargen, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Optargen{
		p:   parser,
		ns:  codefmt.NewNS(pkg.Types.Scope()),
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg),
	}, nil
}

// Build parses annotated functions and synthesizes their builders. All
// potential errors are returned by this method. It must be called before
// [Generate].
func (og *Optargen) Build() error {
	decls, errs := og.p.ParseDecls()
	errs = errors.Join(errs, og.p.Validate(decls))
	if errs != nil {
		return errs
	}
	if len(decls) == 0 {
		// No annotated functions found
		return nil
	}

	imports := og.p.ImportNames()
	sigs := make([]*sig.Signature, len(decls))
	for i, d := range decls {
		// Builder types are declared at package level. Reserving them
		// detects conflicts with existing names and between builders.
		d.Imports = imports
		d.Taken = func(name string) bool { return !og.ns.Reserve(name) }

		s, err := sig.Build(og.p, d.Decl)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		sigs[i] = s
	}
	if errs != nil {
		return errs
	}

	og.marker = og.ns.Name(markerName)
	og.decls = make(map[*ast.FuncDecl]*synth.Decls)
	for i, d := range decls {
		og.decls[d.Func] = synth.Synthesize(sigs[i], og.marker)
	}
	return nil
}

// Generate generates the code of the package. It returns nil if the package
// has no annotated function. It must be called after [Build] succeeds.
func (og *Optargen) Generate() ([]byte, error) {
	if len(og.decls) == 0 {
		return nil, nil
	}
	if err := og.mergeCode(); err != nil {
		return nil, err
	}
	return og.frameCode(), nil
}

// mergeCode copies code from the source files tagged with "//go:build
// optargen". Annotated functions are replaced by their builders.
func (og *Optargen) mergeCode() error {
	fset := og.p.Pkg().Fset
	for _, file := range og.p.OptargenGoFiles() {
		name := filepath.Base(fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			if gen, ok := decl.(*ast.GenDecl); ok && gen.Tok == token.IMPORT {
				// Skip import declarations in files. Required imports will
				// be collected from their usage, and then rewritten as an
				// import declaration group.
				continue
			}

			if first {
				fmt.Fprintf(og.buf, "// %s:\n\n", name)
				first = false
			}

			if fd, ok := decl.(*ast.FuncDecl); ok {
				if d, ok := og.decls[fd]; ok {
					if err := emit.Decls(og.w, d); err != nil {
						return err
					}
					fmt.Fprintf(og.buf, "\n\n")
					continue
				}
			}

			// Prevent import name conflicts when merging multiple files into one
			decl = codefmt.RewriteImports(og.w, decl)

			err := printer.Fprint(og.buf, fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(og.buf, "\n\n")
		}
	}

	fmt.Fprintf(og.buf, "// optargen:\n\n")
	emit.Marker(og.w, og.marker)
	return nil
}

func (og *Optargen) frameCode() []byte {
	// Prepend header code
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !%s\n\n", parse.Tag)
	fmt.Fprintf(&buf, "// Code generated by github.com/sublee/optargen%s. DO NOT EDIT.\n\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", og.p.Pkg().Name)

	imports := og.w.Imports()
	if len(imports) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for _, alias := range slices.Sorted(maps.Keys(imports)) {
			imp := imports[alias]
			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, og.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
