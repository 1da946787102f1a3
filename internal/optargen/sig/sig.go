// Package sig models the signature of a function or method annotated for
// optargen. [Build] validates a [Decl] collected from source and turns it into
// an immutable [Signature] which the synthesizers consume.
package sig

import (
	"go/ast"
	"go/token"

	"github.com/sublee/optargen/internal/typeinfo"
)

// Role decides how the terminal method obtains the value of a parameter.
type Role int

const (
	// Required parameters are passed to the entry point positionally.
	Required Role = iota

	// DefaultValue parameters fall back to the zero value of their type.
	DefaultValue

	// DefaultExpression parameters fall back to an expression evaluated by
	// the terminal method.
	DefaultExpression
)

func (r Role) String() string {
	switch r {
	case Required:
		return "required"
	case DefaultValue:
		return "zero"
	case DefaultExpression:
		return "default"
	}
	return "unknown"
}

// Parameter is a validated parameter of a [Signature].
type Parameter struct {
	Name     string
	Type     ast.Expr // as declared, the element type for a variadic parameter
	Variadic bool
	Role     Role
	Default  ast.Expr // only for DefaultExpression
	Receiver bool
	Setter   string // only for optional parameters
	Pos      token.Pos
}

// IsOptional reports whether the parameter gets a setter.
func (p *Parameter) IsOptional() bool { return p.Role != Required }

// Signature is the validated model of an annotated declaration. It is never
// mutated after [Build].
type Signature struct {
	// Params lists the parameters in declaration order. The receiver of a
	// method comes first.
	Params []*Parameter

	TypeParams     []typeinfo.TypeParam
	RecvTypeParams []typeinfo.TypeParam
	Results        *ast.FieldList

	Builder  string
	Terminal string

	Name string
	Doc  *ast.CommentGroup
	Body *ast.BlockStmt
	File *ast.File
	Pos  token.Pos
}

// IsMethod reports whether the declaration has a receiver.
func (s *Signature) IsMethod() bool {
	return len(s.Params) != 0 && s.Params[0].Receiver
}

// Recv returns the receiver parameter or nil for a free function.
func (s *Signature) Recv() *Parameter {
	if !s.IsMethod() {
		return nil
	}
	return s.Params[0]
}

// IsExported reports whether the entry point is exported.
func (s *Signature) IsExported() bool {
	return ast.IsExported(s.Name)
}

// BuilderTypeParams returns the type parameters of the builder type: the
// receiver type parameters of a method, or the type parameters of a free
// function.
func (s *Signature) BuilderTypeParams() []typeinfo.TypeParam {
	tps := make([]typeinfo.TypeParam, 0, len(s.RecvTypeParams)+len(s.TypeParams))
	tps = append(tps, s.RecvTypeParams...)
	tps = append(tps, s.TypeParams...)
	return tps
}

// IsVariadic reports whether the last parameter is variadic.
func (s *Signature) IsVariadic() bool {
	return len(s.Params) != 0 && s.Params[len(s.Params)-1].Variadic
}
