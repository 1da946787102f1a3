// golangcilintoptargen package provides a plugin for golangci-lint to
// integrate the optargen analyzer. To build a custom golangci-lint binary with
// this plugin, use the following command at this package's directory:
//
//	golangci-lint custom
//
// Now you will have a golangci-lint-optargen binary that you can use to lint
// your Go code with the optargen analyzer. Run it with the optargen build tag
// (--build-tags=optargen) so that annotated files are loaded.
package golangcilintoptargen

import (
	"github.com/golangci/plugin-module-register/register"
	"golang.org/x/tools/go/analysis"

	"github.com/sublee/optargen/pkg/optargenanalysis"
)

func init() {
	register.Plugin("optargen", New)
}

func New(settings any) (register.LinterPlugin, error) {
	return OptargenLinter{}, nil
}

type OptargenLinter struct{}

func (OptargenLinter) BuildAnalyzers() ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{optargenanalysis.Analyzer}, nil
}

func (OptargenLinter) GetLoadMode() string {
	return register.LoadModeTypesInfo
}
