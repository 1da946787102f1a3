// Package parse finds functions annotated with optargen directives in the
// files constrained by "//go:build optargen" and describes them for the
// signature builder.
package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"

	"golang.org/x/tools/go/packages"
)

// Tag is the build tag which optargen sources are constrained by.
const Tag = "optargen"

// Parser parses an AST of the underlying package to collect annotated
// functions.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// OptargenGoFiles returns the Go files that have a "//go:build optargen"
// constraint.
func (p *Parser) OptargenGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.Pkg().Syntax {
		if HasGoBuildOptargen(file) {
			files = append(files, file)
		}
	}
	return files
}

// ImportNames returns the names which the optargen files refer to imported
// packages by. Blank and dot imports have no name.
func (p *Parser) ImportNames() map[string]bool {
	names := make(map[string]bool)
	for _, file := range p.OptargenGoFiles() {
		for _, imp := range file.Imports {
			if imp.Name != nil {
				if imp.Name.Name != "_" && imp.Name.Name != "." {
					names[imp.Name.Name] = true
				}
				continue
			}
			if pkgName := p.pkg.TypesInfo.PkgNameOf(imp); pkgName != nil {
				names[pkgName.Name()] = true
			}
		}
	}
	return names
}

// HasGoBuildOptargen checks if the file has a "//go:build optargen"
// constraint, that is, the file is built only with the optargen tag. Files
// with "//go:build !optargen" such as generated ones do not count.
func HasGoBuildOptargen(file *ast.File) bool {
	for _, group := range file.Comments {
		if group.Pos() > file.Package {
			// Build constraints precede the package clause.
			break
		}
		for _, comment := range group.List {
			if !constraint.IsGoBuild(comment.Text) {
				continue
			}
			expr, err := constraint.Parse(comment.Text)
			if err != nil {
				continue
			}
			with := expr.Eval(func(string) bool { return true })
			without := expr.Eval(func(tag string) bool { return tag != Tag })
			return with && !without
		}
	}
	return false
}
