// Package synth synthesizes the declarations which replace an annotated
// function: a builder type, its setters, its terminal method, and an entry
// point which creates the builder.
//
// Synthesizers are pure. They read a [sig.Signature] and describe the
// declarations with names resolved. Writing them as code is up to the emit
// package.
package synth

import (
	"go/ast"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/optargen/sig"
	"github.com/sublee/optargen/internal/typeinfo"
)

// Decls holds the four declarations synthesized from a signature.
type Decls struct {
	Sig      *sig.Signature
	Type     *TypeDecl
	Setters  []*SetterDecl
	Terminal *TerminalDecl
	Entry    *EntryDecl
}

// Synthesize runs all synthesizers. marker is the type name of the no-copy
// marker which the emitter declares once per file.
func Synthesize(s *sig.Signature, marker string) *Decls {
	t := BuilderType(s, marker)
	return &Decls{
		Sig:      s,
		Type:     t,
		Setters:  Setters(s, t),
		Terminal: Terminal(s, t),
		Entry:    Entry(s, t),
	}
}

// Field is a field of the builder type which holds a parameter.
type Field struct {
	Name  string
	Param *sig.Parameter
}

// TypeDecl describes the builder type.
//
//	type JoinStringsBuilder struct {
//		_        optargenNoCopy
//		a        string
//		b        *string
//		c        *string
//		consumed bool
//	}
type TypeDecl struct {
	Name       string
	TypeParams []typeinfo.TypeParam
	Marker     string

	// Recv is the receiver name of the setters and the terminal.
	Recv string

	Required []Field
	Optional []Field

	// Guard is the name of the field which marks the builder consumed.
	Guard string
}

// Field returns the field which holds the parameter.
func (t *TypeDecl) Field(p *sig.Parameter) (Field, bool) {
	for _, fs := range [][]Field{t.Required, t.Optional} {
		for _, f := range fs {
			if f.Param == p {
				return f, true
			}
		}
	}
	return Field{}, false
}

// BuilderType synthesizes the builder type. Required parameters, including
// the receiver of a method, are kept as declared. Optional parameters are
// kept as pointers which are nil until their setters are called.
func BuilderType(s *sig.Signature, marker string) *TypeDecl {
	required, optional := s.Classify()

	// Fields and methods share a namespace.
	fieldNS := codefmt.NewNS(nil)
	fieldNS.Reserve(s.Terminal)
	for _, p := range optional {
		fieldNS.Reserve(p.Setter)
	}

	t := &TypeDecl{
		Name:       s.Builder,
		TypeParams: s.BuilderTypeParams(),
		Marker:     marker,
		Recv:       recvName(s),
	}
	for _, p := range required {
		t.Required = append(t.Required, Field{fieldNS.Name(p.Name), p})
	}
	for _, p := range optional {
		t.Optional = append(t.Optional, Field{fieldNS.Name(p.Name), p})
	}
	t.Guard = fieldNS.Name("consumed")
	return t
}

// recvName chooses the receiver name of builder methods after the initial of
// the builder name. Setters and the terminal put parameters and user code in
// the scope of the receiver, so it avoids every name they use.
func recvName(s *sig.Signature) string {
	ns := identsNS(s)
	ns.Reserve(s.Name)

	r, _ := utf8.DecodeRuneInString(s.Builder)
	name := string(unicode.ToLower(r))
	if !unicode.IsLetter(r) {
		name = "b"
	}
	return ns.Name(name)
}

// identsNS returns a namespace reserving every name which user code around
// the generated code refers to: parameters, type parameters, and identifiers
// in types, default expressions, results, and the body.
func identsNS(s *sig.Signature) codefmt.NS {
	ns := codefmt.NewNS(nil)
	for _, p := range s.Params {
		ns.Reserve(p.Name)
		ns.ReserveIdents(p.Type, p.Default)
	}
	for _, tp := range s.BuilderTypeParams() {
		ns.Reserve(tp.Name)
	}
	ns.ReserveIdents(s.Results, s.Body)
	return ns
}

// SetterDecl describes a setter of an optional parameter.
//
//	func (j *JoinStringsBuilder) C(c string) *JoinStringsBuilder {
//		if j.consumed {
//			panic("optargen: JoinStringsBuilder used after Exec")
//		}
//		j.c = &c
//		return j
//	}
type SetterDecl struct {
	Name  string
	Field Field

	// Arg is the name of the setter argument.
	Arg string
}

// Setters synthesizes a setter per optional parameter in declaration order.
// The setter argument is named after the parameter.
func Setters(s *sig.Signature, t *TypeDecl) []*SetterDecl {
	var setters []*SetterDecl
	for _, f := range t.Optional {
		setters = append(setters, &SetterDecl{
			Name:  f.Param.Setter,
			Field: f,
			Arg:   f.Param.Name,
		})
	}
	return setters
}

// Local is a local variable of the terminal which resolves an optional
// parameter.
type Local struct {
	Name  string
	Field Field
}

// TerminalDecl describes the terminal method.
//
//	func (j *JoinStringsBuilder) Exec() string {
//		if j.consumed {
//			panic("optargen: JoinStringsBuilder used after Exec")
//		}
//		j.consumed = true
//
//		JoinStrings := func(a string, b string, c string) string {
//			return a + b + c
//		}
//
//		var b string
//		if j.b != nil {
//			b = *j.b
//		}
//
//		var c string
//		if j.c != nil {
//			c = *j.c
//		} else {
//			c = "ccc"
//		}
//
//		return JoinStrings(j.a, b, c)
//	}
type TerminalDecl struct {
	Name string

	// Inner is the local name of the original body as a function literal.
	// Recursive reports whether the body refers to Inner, so it has to be
	// declared before assigned.
	Inner     string
	Recursive bool

	// Params are the parameters of the original body in declaration order.
	Params  []*sig.Parameter
	Results *ast.FieldList
	Body    *ast.BlockStmt

	Locals []Local

	// Args are the arguments to call the original body with, in
	// declaration order.
	Args []string
}

// Terminal synthesizes the terminal method. It resolves each optional
// parameter in declaration order: the value set by the setter if any,
// otherwise its default. Defaults are evaluated only for absent parameters.
func Terminal(s *sig.Signature, t *TypeDecl) *TerminalDecl {
	ns := codefmt.NewNS(nil)
	ns.Reserve(t.Recv)
	for _, tp := range t.TypeParams {
		ns.Reserve(tp.Name)
	}
	for _, p := range s.Params {
		ns.ReserveIdents(p.Type, p.Default)
	}

	term := &TerminalDecl{
		Name:    s.Terminal,
		Params:  s.Params,
		Results: s.Results,
		Body:    s.Body,
	}

	if s.IsMethod() {
		// A method cannot refer to itself without its receiver. Its name
		// is free to be taken by a default expression.
		term.Inner = ns.Name(s.Name)
	} else {
		// A free function refers to itself by its name. The local name
		// must be the same so that recursive calls reach the original
		// body.
		ns.Reserve(s.Name)
		term.Inner = s.Name
		term.Recursive = refersTo(s.Body, s.Name)
	}

	for _, f := range t.Optional {
		term.Locals = append(term.Locals, Local{ns.Name(f.Param.Name), f})
	}

	locals := make(map[*sig.Parameter]string)
	for _, l := range term.Locals {
		locals[l.Field.Param] = l.Name
	}
	for _, p := range s.Params {
		if name, ok := locals[p]; ok {
			term.Args = append(term.Args, name)
			continue
		}
		f, _ := t.Field(p)
		term.Args = append(term.Args, t.Recv+"."+f.Name)
	}
	return term
}

// refersTo reports whether any identifier in node is named name.
func refersTo(node ast.Node, name string) bool {
	if node == nil {
		return false
	}
	found := false
	ast.Inspect(node, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = true
		}
		return !found
	})
	return found
}

// EntryDecl describes the entry point which replaces the original function.
//
//	// JoinStrings joins three strings.
//	func JoinStrings(a string) *JoinStringsBuilder {
//		return &JoinStringsBuilder{a: a}
//	}
type EntryDecl struct {
	Name       string
	Recv       *sig.Parameter
	TypeParams []typeinfo.TypeParam

	// Params are the required parameters without the receiver.
	Params []*sig.Parameter

	// Doc is the doc comment of the original function without optargen
	// directives.
	Doc []*ast.Comment

	// Fields are the builder fields which the entry point initializes. They
	// are the required parameters including the receiver.
	Fields []Field
}

// Entry synthesizes the entry point. It keeps the name, the receiver, the
// type parameters, and the doc comment of the original function, but takes
// only required parameters.
func Entry(s *sig.Signature, t *TypeDecl) *EntryDecl {
	e := &EntryDecl{
		Name:       s.Name,
		Recv:       s.Recv(),
		TypeParams: s.TypeParams,
		Doc:        EntryDoc(s.Doc),
		Fields:     t.Required,
	}
	for _, f := range t.Required {
		if !f.Param.Receiver {
			e.Params = append(e.Params, f.Param)
		}
	}
	return e
}

// EntryDoc filters optargen directives out of a doc comment. Blank comment
// lines left at the end are dropped.
func EntryDoc(doc *ast.CommentGroup) []*ast.Comment {
	if doc == nil {
		return nil
	}

	var list []*ast.Comment
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, "//optargen:") {
			continue
		}
		list = append(list, c)
	}
	for len(list) != 0 && strings.TrimSpace(list[len(list)-1].Text) == "//" {
		list = list[:len(list)-1]
	}
	return list
}
