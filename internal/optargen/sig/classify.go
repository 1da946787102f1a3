package sig

import (
	"go/token"

	"github.com/sublee/optargen/internal/lcs"
)

// Classify partitions the parameters into required and optional ones. Both
// keep the declaration order. The receiver of a method is required.
func (s *Signature) Classify() (required, optional []*Parameter) {
	for _, p := range s.Params {
		if p.IsOptional() {
			optional = append(optional, p)
		} else {
			required = append(required, p)
		}
	}
	return required, optional
}

// SetterName derives the setter name of a parameter. Setters of an exported
// entry point are exported:
//
//	SetterName("other_value", true)  // "OtherValue"
//	SetterName("other_value", false) // "other_value"
//
// A parameter name which has no exported form keeps its name.
func SetterName(param string, exported bool) string {
	if !exported {
		return param
	}
	name := lcs.Exported(param)
	if !token.IsIdentifier(name) {
		return param
	}
	return name
}
