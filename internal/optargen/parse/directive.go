package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/sublee/optargen/internal/codefmt"
	"github.com/sublee/optargen/internal/lcs"
)

// DirectivePrefix starts every optargen directive.
const DirectivePrefix = "//optargen:"

// Kind is the kind of a directive.
type Kind int

const (
	// KindBuilder marks a function to generate a builder for.
	//
	//	//optargen:builder <Builder> <Terminal>
	KindBuilder Kind = iota

	// KindZero makes a parameter optional with its zero value as default.
	//
	//	//optargen:zero
	KindZero

	// KindDefault makes a parameter optional with a default expression.
	//
	//	//optargen:default <expr>
	KindDefault
)

var kindNames = []string{"builder", "zero", "default"}

var kinds = map[string]Kind{
	"builder": KindBuilder,
	"zero":    KindZero,
	"default": KindDefault,
}

func (k Kind) String() string {
	switch k {
	case KindBuilder:
		return "builder"
	case KindZero:
		return "zero"
	case KindDefault:
		return "default"
	}
	return "unknown"
}

func (k Kind) usage() string {
	switch k {
	case KindBuilder:
		return "//optargen:builder <Builder> <Terminal>"
	case KindZero:
		return "//optargen:zero"
	case KindDefault:
		return "//optargen:default <expr>"
	}
	return ""
}

// Directive is a parsed optargen directive comment.
type Directive struct {
	Kind    Kind
	Comment *ast.Comment

	// Args are the words after the directive name, up to a trailing comment.
	Args []Arg
}

// Arg is a word of a directive.
type Arg struct {
	Text  string
	Pos   token.Pos
	Ident bool
}

func (a Arg) End() token.Pos { return a.Pos + token.Pos(len(a.Text)) }

func (d *Directive) Pos() token.Pos { return d.Comment.Pos() }
func (d *Directive) End() token.Pos { return d.Comment.End() }

// Name returns the directive name as written, e.g., "optargen:zero".
func (d *Directive) Name() string { return "optargen:" + d.Kind.String() }

// Expr returns the source text spanning all arguments and its position. It
// is the default expression of a default directive.
func (d *Directive) Expr() (string, token.Pos) {
	if len(d.Args) == 0 {
		return "", token.NoPos
	}
	first, last := d.Args[0], d.Args[len(d.Args)-1]
	offset := int(first.Pos - d.Comment.Slash)
	end := int(last.End() - d.Comment.Slash)
	return d.Comment.Text[offset:end], first.Pos
}

// IsDirective reports whether the comment is an optargen directive, whether
// or not it is well-formed.
func IsDirective(c *ast.Comment) bool {
	return strings.HasPrefix(c.Text, DirectivePrefix)
}

type directiveAST struct {
	Name    *word   `parser:"@@"`
	Args    []*word `parser:"@@*"`
	Trailer *string `parser:"@Comment?"`
}

type word struct {
	Pos   lexer.Position
	Ident string `parser:"  @Ident"`
	Other string `parser:"| @(String | RawString | Char | Number | Punct)"`
}

func (w *word) text() string { return w.Ident + w.Other }

// The lexer splits a directive into Go-like tokens. Only the extent of each
// token matters. Default expressions are parsed again by go/parser.
var directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//.*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "RawString", Pattern: "`[^`]*`"},
	{Name: "Char", Pattern: `'(\\.|[^'\\])*'`},
	{Name: "Number", Pattern: `[0-9][0-9a-zA-Z_.]*`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_]*`},
	{Name: "Punct", Pattern: `[^\s]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var directiveParser = participle.MustBuild[directiveAST](
	participle.Lexer(directiveLexer),
	participle.Elide("Whitespace"),
)

// ParseDirective parses an optargen directive comment. It returns nil
// without error if the comment is not a directive.
//
// Anything after a second "//" is a trailing comment and ignored:
//
//	//optargen:default 42 // the answer
func (p *Parser) ParseDirective(c *ast.Comment) (*Directive, error) {
	if !IsDirective(c) {
		return nil, nil
	}

	text := c.Text[len(DirectivePrefix):]
	base := c.Slash + token.Pos(len(DirectivePrefix))

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, "//") {
		return nil, codefmt.Errorf(p, c, "missing directive name after %q", DirectivePrefix)
	}

	tree, err := directiveParser.ParseString("", text)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			pos := base + token.Pos(perr.Position().Offset)
			return nil, codefmt.Errorf(p, codefmt.Pos(pos), "malformed directive: %s", perr.Message())
		}
		return nil, codefmt.Errorf(p, c, "malformed directive: %s", err.Error())
	}

	name := tree.Name.text()
	namePos := base + token.Pos(tree.Name.Pos.Offset)
	nameSpan := codefmt.Span(namePos, namePos+token.Pos(len(name)))
	if tree.Name.Ident == "" {
		return nil, codefmt.Errorf(p, nameSpan, "directive name must be an identifier, got %q", name)
	}

	kind, ok := kinds[name]
	if !ok {
		if closest, ok := lcs.Closest(name, kindNames); ok {
			return nil, codefmt.Errorf(p, nameSpan, "unknown directive optargen:%s; did you mean optargen:%s?", name, closest)
		}
		return nil, codefmt.Errorf(p, nameSpan, "unknown directive optargen:%s", name)
	}

	d := &Directive{Kind: kind, Comment: c}
	for _, w := range tree.Args {
		d.Args = append(d.Args, Arg{
			Text:  w.text(),
			Pos:   base + token.Pos(w.Pos.Offset),
			Ident: w.Ident != "",
		})
	}

	if err := p.checkArgs(d); err != nil {
		return nil, err
	}
	return d, nil
}

// checkArgs checks the number and the form of the arguments.
func (p *Parser) checkArgs(d *Directive) error {
	switch d.Kind {
	case KindBuilder:
		if len(d.Args) != 2 {
			return codefmt.Errorf(p, d, "%s takes 2 arguments, got %d; usage: %s", d.Name(), len(d.Args), d.Kind.usage())
		}
		for _, arg := range d.Args {
			if !arg.Ident || !token.IsIdentifier(arg.Text) {
				return codefmt.Errorf(p, codefmt.Span(arg.Pos, arg.End()), "%s needs identifiers, got %q; usage: %s", d.Name(), arg.Text, d.Kind.usage())
			}
		}
	case KindZero:
		if len(d.Args) != 0 {
			arg := d.Args[0]
			return codefmt.Errorf(p, codefmt.Span(arg.Pos, arg.End()), "%s takes no arguments; usage: %s", d.Name(), d.Kind.usage())
		}
	case KindDefault:
		if len(d.Args) == 0 {
			return codefmt.Errorf(p, d, "%s needs an expression; usage: %s", d.Name(), d.Kind.usage())
		}
	}
	return nil
}
