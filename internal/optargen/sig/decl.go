package sig

import (
	"go/ast"
	"go/token"

	"github.com/sublee/optargen/internal/typeinfo"
)

// Annotation is a role annotation attached to a parameter in source.
type Annotation struct {
	Role    Role
	Default ast.Expr // only for DefaultExpression
	Pos     token.Pos
}

// Field is a parameter as declared in source, before validation.
type Field struct {
	Name        *ast.Ident // nil if unnamed
	Type        ast.Expr   // as declared, *ast.Ellipsis for a variadic parameter
	Annotations []Annotation
	Pos         token.Pos
}

// QualifierKind classifies qualifiers which forbid wrapping a declaration.
type QualifierKind int

const (
	// Linkage qualifiers fix the calling convention or the symbol of the
	// declaration, which a wrapper would break.
	Linkage QualifierKind = iota

	// InitOnly qualifiers restrict the evaluation context of the
	// declaration to package initialization.
	InitOnly

	// UncheckedMemory qualifiers disable runtime checks which the builder
	// allocation relies on.
	UncheckedMemory
)

// Qualifier is a directive or a declaration form found on a declaration.
type Qualifier struct {
	Text string // e.g., "//go:linkname", "func init"
	Kind QualifierKind
	Pos  token.Pos
}

// Decl describes an annotated declaration as the frontend found it.
type Decl struct {
	Name *ast.Ident

	// Recv is the receiver of a method, or nil for a free function.
	Recv           *Field
	Params         []*Field
	TypeParams     []typeinfo.TypeParam
	RecvTypeParams []typeinfo.TypeParam
	Results        *ast.FieldList

	// Builder and Terminal are the names given by the builder directive.
	// Their positions point into the directive.
	Builder  *ast.Ident
	Terminal *ast.Ident

	Doc  *ast.CommentGroup
	Body *ast.BlockStmt
	File *ast.File

	Qualifiers []Qualifier

	// Imports holds the names of the packages imported by the files which
	// the generated code is merged from. It may be nil.
	Imports map[string]bool

	// Taken reports whether a package-level name is already declared. It may
	// be nil.
	Taken func(name string) bool
}

func (d *Decl) taken(name string) bool {
	return d.Taken != nil && d.Taken(name)
}

// localName describes the receiver, parameter, or type parameter of the
// declaration named name. It returns "" if there is none.
func (d *Decl) localName(name string) string {
	if d.Recv != nil && d.Recv.Name != nil && d.Recv.Name.Name == name {
		return "receiver " + name
	}
	for _, tp := range d.RecvTypeParams {
		if tp.Name == name {
			return "receiver type parameter " + name
		}
	}
	for _, tp := range d.TypeParams {
		if tp.Name == name {
			return "type parameter " + name
		}
	}
	for _, f := range d.Params {
		if f.Name != nil && f.Name.Name == name {
			return "parameter " + name
		}
	}
	return ""
}

// IsVariadic reports whether the field is declared as ...T.
func (f *Field) IsVariadic() bool {
	_, ok := f.Type.(*ast.Ellipsis)
	return ok
}

func (f *Field) elemType() ast.Expr {
	if e, ok := f.Type.(*ast.Ellipsis); ok {
		return e.Elt
	}
	return f.Type
}
