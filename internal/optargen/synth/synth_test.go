package synth_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/sublee/optargen/internal/optargen/sig"
	"github.com/sublee/optargen/internal/optargen/synth"
	"github.com/sublee/optargen/internal/typeinfo"
)

type pkger struct{ fset *token.FileSet }

func (p pkger) Pkg() *packages.Package { return &packages.Package{Fset: p.fset} }

// build parses a function declaration and builds its signature. Parameters in
// roles are optional: an empty string means the zero value, otherwise it is a
// default expression.
func build(t *testing.T, src, builder string, roles map[string]string, recvTypeParams ...string) *sig.Signature {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", "package p\n\n"+src, parser.ParseComments)
	require.NoError(t, err)

	fd := file.Decls[0].(*ast.FuncDecl)
	decl := &sig.Decl{
		Name:     fd.Name,
		Results:  fd.Type.Results,
		Builder:  ast.NewIdent(builder),
		Terminal: ast.NewIdent("Exec"),
		Doc:      fd.Doc,
		Body:     fd.Body,
		File:     file,
	}
	for _, name := range recvTypeParams {
		decl.RecvTypeParams = append(decl.RecvTypeParams, typeinfo.TypeParam{Name: name})
	}
	if fd.Recv != nil {
		f := fd.Recv.List[0]
		decl.Recv = &sig.Field{Type: f.Type, Pos: f.Pos()}
		if len(f.Names) != 0 {
			decl.Recv.Name = f.Names[0]
		}
	}
	for _, f := range fd.Type.Params.List {
		for _, name := range f.Names {
			field := &sig.Field{Name: name, Type: f.Type, Pos: name.Pos()}
			if expr, ok := roles[name.Name]; ok {
				a := sig.Annotation{Role: sig.DefaultValue}
				if expr != "" {
					a.Role = sig.DefaultExpression
					a.Default, err = parser.ParseExpr(expr)
					require.NoError(t, err)
				}
				field.Annotations = []sig.Annotation{a}
			}
			decl.Params = append(decl.Params, field)
		}
	}

	s, err := sig.Build(pkger{fset}, decl)
	require.NoError(t, err)
	return s
}

func fieldNames(fs []synth.Field) []string {
	var names []string
	for _, f := range fs {
		names = append(names, f.Name)
	}
	return names
}

func localNames(ls []synth.Local) []string {
	var names []string
	for _, l := range ls {
		names = append(names, l.Name)
	}
	return names
}

func TestSynthesizeJoinStrings(t *testing.T) {
	s := build(t, `
// JoinStrings joins three strings.
//
//optargen:builder JoinStringsBuilder Exec
func JoinStrings(a string, b string, c string) string { return a + b + c }
`, "JoinStringsBuilder", map[string]string{"b": "", "c": `"ccc"`})

	d := synth.Synthesize(s, "optargenNoCopy")

	assert.Equal(t, "JoinStringsBuilder", d.Type.Name)
	assert.Equal(t, "optargenNoCopy", d.Type.Marker)
	assert.Equal(t, "j", d.Type.Recv)
	assert.Equal(t, []string{"a"}, fieldNames(d.Type.Required))
	assert.Equal(t, []string{"b", "c"}, fieldNames(d.Type.Optional))
	assert.Equal(t, "consumed", d.Type.Guard)
	assert.Empty(t, d.Type.TypeParams)

	require.Len(t, d.Setters, 2)
	assert.Equal(t, "B", d.Setters[0].Name)
	assert.Equal(t, "b", d.Setters[0].Arg)
	assert.Equal(t, "b", d.Setters[0].Field.Name)
	assert.Equal(t, "C", d.Setters[1].Name)

	assert.Equal(t, "Exec", d.Terminal.Name)
	assert.Equal(t, "JoinStrings", d.Terminal.Inner)
	assert.False(t, d.Terminal.Recursive)
	assert.Equal(t, []string{"b", "c"}, localNames(d.Terminal.Locals))
	assert.Equal(t, []string{"j.a", "b", "c"}, d.Terminal.Args)
	assert.Same(t, s.Body, d.Terminal.Body)

	assert.Equal(t, "JoinStrings", d.Entry.Name)
	assert.Nil(t, d.Entry.Recv)
	require.Len(t, d.Entry.Params, 1)
	assert.Equal(t, "a", d.Entry.Params[0].Name)
	assert.Equal(t, []string{"a"}, fieldNames(d.Entry.Fields))
	require.Len(t, d.Entry.Doc, 1)
	assert.Equal(t, "// JoinStrings joins three strings.", d.Entry.Doc[0].Text)
}

func TestBuilderTypeFieldAvoidsMethods(t *testing.T) {
	s := build(t, `func join(a, b, consumed string) string { return a + b }`,
		"joinBuilder", map[string]string{"b": "", "consumed": ""})

	d := synth.Synthesize(s, "noCopy")
	assert.Equal(t, "b", d.Setters[0].Name)
	assert.Equal(t, "consumed", d.Setters[1].Name)
	assert.Equal(t, []string{"b2", "consumed2"}, fieldNames(d.Type.Optional))
	assert.Equal(t, "consumed3", d.Type.Guard)

	f, ok := d.Type.Field(s.Params[1])
	assert.True(t, ok)
	assert.Equal(t, "b2", f.Name)
}

func TestRecvAvoidsUserNames(t *testing.T) {
	s := build(t, `func Join(a string, j string) string { return a + j + jj }`,
		"JoinBuilder", map[string]string{"j": ""})

	d := synth.Synthesize(s, "noCopy")
	assert.Equal(t, "j2", d.Type.Recv)
	assert.Equal(t, []string{"j2.a", "j"}, d.Terminal.Args)
}

func TestTerminalRecursive(t *testing.T) {
	s := build(t, `func Fact(n int, acc int) int {
	if n == 0 {
		return acc
	}
	return Fact(n-1, acc*n)
}`, "FactBuilder", map[string]string{"acc": "1"})

	d := synth.Synthesize(s, "noCopy")
	assert.Equal(t, "Fact", d.Terminal.Inner)
	assert.True(t, d.Terminal.Recursive)
}

func TestTerminalLocalsAvoidDefaults(t *testing.T) {
	s := build(t, `func Alloc(n int, size int) []byte { return nil }`,
		"AllocBuilder", map[string]string{"size": "cfg.size"})

	d := synth.Synthesize(s, "noCopy")
	assert.Equal(t, []string{"size2"}, localNames(d.Terminal.Locals))
	assert.Equal(t, []string{"a.n", "size2"}, d.Terminal.Args)
}

func TestSynthesizeMethod(t *testing.T) {
	s := build(t, `func (v *Vec[T]) GetOr(i int, d T) T { return d }`,
		"VecGetOrBuilder", map[string]string{"d": "*new(T)"}, "T")

	d := synth.Synthesize(s, "noCopy")
	assert.Equal(t, "v2", d.Type.Recv)
	require.Len(t, d.Type.TypeParams, 1)
	assert.Equal(t, "T", d.Type.TypeParams[0].Name)
	assert.Equal(t, []string{"v", "i"}, fieldNames(d.Type.Required))
	assert.Equal(t, []string{"d"}, fieldNames(d.Type.Optional))

	assert.Equal(t, "GetOr", d.Terminal.Inner)
	assert.False(t, d.Terminal.Recursive)
	assert.Equal(t, []string{"v2.v", "v2.i", "d"}, d.Terminal.Args)
	assert.Len(t, d.Terminal.Params, 3)

	assert.Equal(t, "v", d.Entry.Recv.Name)
	require.Len(t, d.Entry.Params, 1)
	assert.Equal(t, "i", d.Entry.Params[0].Name)
	assert.Equal(t, []string{"v", "i"}, fieldNames(d.Entry.Fields))
	assert.Empty(t, d.Entry.TypeParams)
}

func TestSynthesizeMethodInnerAvoidsDefaults(t *testing.T) {
	s := build(t, `func (v Vec) Len(scale int) int { return len(v) * scale }`,
		"VecLenBuilder", map[string]string{"scale": "Len(defaultVec)"})

	d := synth.Synthesize(s, "noCopy")
	assert.Equal(t, "Len2", d.Terminal.Inner)
}

func TestSynthesizeVariadic(t *testing.T) {
	s := build(t, `func Join(sep string, parts ...string) string { return sep }`,
		"JoinBuilder", map[string]string{"parts": ""})

	d := synth.Synthesize(s, "noCopy")
	assert.True(t, d.Type.Optional[0].Param.Variadic)
	assert.Equal(t, []string{"j.sep", "parts"}, d.Terminal.Args)
	assert.Equal(t, "Parts", d.Setters[0].Name)
}

func TestSynthesizeNoOptional(t *testing.T) {
	s := build(t, `func Add(a, b int) int { return a + b }`, "AddBuilder", nil)

	d := synth.Synthesize(s, "noCopy")
	assert.Empty(t, d.Setters)
	assert.Empty(t, d.Terminal.Locals)
	assert.Equal(t, "a2", d.Type.Recv)
	assert.Equal(t, []string{"a2.a", "a2.b"}, d.Terminal.Args)
}

func TestEntryDoc(t *testing.T) {
	doc := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// Foo does something."},
		{Text: "//"},
		{Text: "//go:noinline"},
		{Text: "//optargen:builder FooBuilder Exec"},
		{Text: "//"},
	}}

	list := synth.EntryDoc(doc)
	var texts []string
	for _, c := range list {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"// Foo does something.", "//", "//go:noinline"}, texts)

	assert.Nil(t, synth.EntryDoc(nil))
	assert.Empty(t, synth.EntryDoc(&ast.CommentGroup{List: []*ast.Comment{{Text: "//optargen:builder B E"}}}))
}
