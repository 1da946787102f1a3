package sig

import (
	"errors"
	"fmt"
	"go/types"
	"strings"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/optargen/names"
)

// recvName is the preferred name of an unnamed receiver.
const recvName = "recv"

// Build validates the declaration and returns its [Signature]. All errors of
// the declaration are collected and joined. Each error is a
// [codefmt.CodeError] positioned at the offending part of the source.
func Build(pkger codefmt.Pkger, decl *Decl) (*Signature, error) {
	var errs error
	errs = errors.Join(errs, checkQualifiers(pkger, decl))
	errs = errors.Join(errs, checkRecvTypeParams(pkger, decl))
	errs = errors.Join(errs, checkNames(pkger, decl))

	s := &Signature{
		TypeParams:     decl.TypeParams,
		RecvTypeParams: decl.RecvTypeParams,
		Results:        decl.Results,
		Builder:        decl.Builder.Name,
		Terminal:       decl.Terminal.Name,
		Name:           decl.Name.Name,
		Doc:            decl.Doc,
		Body:           decl.Body,
		File:           decl.File,
		Pos:            decl.Name.Pos(),
	}

	if decl.Recv != nil {
		s.Params = append(s.Params, newRecv(decl))
	}

	for i, f := range decl.Params {
		p, err := newParam(pkger, decl, i, f)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		s.Params = append(s.Params, p)
	}

	if errs != nil {
		return nil, errs
	}

	_, optional := s.Classify()
	for _, p := range optional {
		p.Setter = SetterName(p.Name, s.IsExported())
	}
	if err := checkMethods(pkger, decl, optional); err != nil {
		return nil, err
	}

	return s, nil
}

// newRecv converts the receiver field to a parameter. An unnamed or blank
// receiver is named so that the builder can keep it in a field. The name does
// not shadow any identifier used by the declaration.
func newRecv(decl *Decl) *Parameter {
	f := decl.Recv

	name := ""
	if f.Name != nil && f.Name.Name != "_" {
		name = f.Name.Name
	} else {
		ns := codefmt.NewNS(nil)
		ns.ReserveIdents(decl.Body, decl.Results, decl.Name)
		for _, p := range decl.Params {
			ns.ReserveIdents(p.Name, p.Type)
			for _, a := range p.Annotations {
				ns.ReserveIdents(a.Default)
			}
		}
		for _, tp := range decl.RecvTypeParams {
			ns.Reserve(tp.Name)
		}
		name = ns.Name(recvName)
	}

	return &Parameter{
		Name:     name,
		Type:     f.Type,
		Role:     Required,
		Receiver: true,
		Pos:      f.Pos,
	}
}

func newParam(pkger codefmt.Pkger, decl *Decl, i int, f *Field) (*Parameter, error) {
	var errs error
	if f.Name == nil {
		errs = errors.Join(errs, codefmt.Errorf(pkger, codefmt.Pos(f.Pos), "parameter %d of %s must be named", i+1, decl.Name.Name))
	} else if f.Name.Name == "_" {
		errs = errors.Join(errs, codefmt.Errorf(pkger, f.Name, "parameter %d of %s must not be blank", i+1, decl.Name.Name))
	}

	if len(f.Annotations) > 1 {
		first := f.Annotations[0]
		for _, a := range f.Annotations[1:] {
			err := codefmt.Errorf(pkger, codefmt.Pos(a.Pos), "parameter %s has multiple roles: %s and %s", paramLabel(i, f), first.Role, a.Role)
			errs = errors.Join(errs, err)
		}
	}

	if errs != nil {
		return nil, errs
	}

	p := &Parameter{
		Name:     f.Name.Name,
		Type:     f.elemType(),
		Variadic: f.IsVariadic(),
		Role:     Required,
		Pos:      f.Pos,
	}
	if len(f.Annotations) == 1 {
		p.Role = f.Annotations[0].Role
		p.Default = f.Annotations[0].Default
	}
	return p, nil
}

func paramLabel(i int, f *Field) string {
	if f.Name == nil {
		return fmt.Sprintf("%d", i+1)
	}
	return f.Name.Name
}

// checkQualifiers reports qualifiers which forbid wrapping.
func checkQualifiers(pkger codefmt.Pkger, decl *Decl) error {
	var errs error
	for _, q := range decl.Qualifiers {
		var reason string
		switch q.Kind {
		case Linkage:
			reason = "fixes the calling convention or the linkage"
		case InitOnly:
			reason = "runs only at package initialization"
		case UncheckedMemory:
			reason = "relaxes memory safety checks"
		}
		err := codefmt.Errorf(pkger, codefmt.Pos(q.Pos), "cannot generate builder for %s: %s %s", decl.Name.Name, q.Text, reason)
		errs = errors.Join(errs, err)
	}
	return errs
}

// checkRecvTypeParams reports receiver type parameters written as "_". The
// builder type has to redeclare them, which needs a name.
func checkRecvTypeParams(pkger codefmt.Pkger, decl *Decl) error {
	var errs error
	for i, tp := range decl.RecvTypeParams {
		if !tp.IsBlank() {
			continue
		}
		pos := tp.Pos
		if !pos.IsValid() && decl.Recv != nil {
			pos = decl.Recv.Pos
		}
		err := codefmt.Errorf(pkger, codefmt.Pos(pos), "receiver type parameter %d of %s must be named", i+1, decl.Name.Name)
		errs = errors.Join(errs, err)
	}
	return errs
}

// checkNames reports unusable builder and terminal names. The builder type
// is referred to in the signatures of the entry point and the builder methods,
// so no name visible there may shadow it.
func checkNames(pkger codefmt.Pkger, decl *Decl) error {
	var errs error
	name := decl.Builder.Name
	if name == "_" {
		errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Builder, "builder name must not be blank"))
	} else if what := decl.localName(name); what != "" {
		errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Builder, "builder name %s conflicts with %s of %s", name, what, decl.Name.Name))
	} else if types.Universe.Lookup(name) != nil {
		errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Builder, "builder name %s shadows the predeclared identifier", name))
	} else if decl.Imports[name] {
		errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Builder, "builder name %s conflicts with an imported package", name))
	} else if decl.taken(name) {
		errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Builder, "builder name %s is already declared", name))
	}

	if decl.Terminal.Name == "_" {
		errs = errors.Join(errs, codefmt.Errorf(pkger, decl.Terminal, "terminal name must not be blank"))
	}
	return errs
}

// checkMethods reports collisions among the setters and the terminal.
func checkMethods(pkger codefmt.Pkger, decl *Decl, optional []*Parameter) error {
	tbl := names.NewTable()
	tbl.Add(decl.Terminal.Name, names.Entry{Name: decl.Terminal.Name, Kind: names.Terminal, Pos: decl.Terminal.Pos()})
	for _, p := range optional {
		tbl.Add(p.Setter, names.Entry{Name: p.Name, Kind: names.Setter, Pos: p.Pos})
	}
	if tbl.IsValid() {
		return nil
	}
	return codefmt.Errorf(pkger, decl.Builder, "methods of builder %s collide\n%s", decl.Builder.Name, indent(tbl.String()))
}

func indent(s string) string {
	var b strings.Builder
	for _, line := range strings.SplitAfter(s, "\n") {
		b.WriteString("\t")
		b.WriteString(line)
	}
	return b.String()
}
