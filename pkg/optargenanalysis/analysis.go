// Package optargenanalysis reports optargen errors through the Go analysis
// protocol, so that editors and linters show them at their positions.
//
// Load packages with the optargen build tag, for example by
// GOFLAGS=-tags=optargen. Otherwise files constrained by "//go:build
// optargen" are not analyzed.
package optargenanalysis

import (
	"errors"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/optargen/internal/codefmt"
	optargeninternal "github.com/sublee/optargen/internal/optargen"
)

// Analyzer validates the usage of optargen directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "optargen",
	Doc:  "linter for optargen directives",
	Run:  run,

	// Code outside optargen files calls generated entry points which do not
	// exist with the optargen tag.
	RunDespiteErrors: true,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	og, err := optargeninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := og.Build(); err != nil {
		return nil, report(pass, err)
	}
	return nil, nil
}

// report unrolls joined errors and reports each positioned [codefmt.CodeError]
// as a diagnostic. The other errors have nowhere to be reported, so they are
// joined and returned to fail the analysis.
func report(pass *analysis.Pass, err error) error {
	var unreported []error
	errs := []error{err}
	for len(errs) != 0 {
		err := errs[0]
		errs = errs[1:]

		if codeErr, ok := err.(*codefmt.CodeError); ok && codeErr.Pos().IsValid() {
			pass.Report(analysis.Diagnostic{
				Pos:     codeErr.Pos(),
				End:     codeErr.End(),
				Message: codeErr.Unwrap().Error(),
			})
			continue
		}

		if u, ok := err.(interface{ Unwrap() []error }); ok {
			errs = append(errs, u.Unwrap()...)
			continue
		}

		unreported = append(unreported, err)
	}
	return errors.Join(unreported...)
}
