// Package optargen documents the directives of the optargen code generator.
//
// Go has no optional parameters. Optargen turns a function with optional
// parameters into a builder: the required parameters are passed to an entry
// point, each optional parameter gets a chainable setter, and a terminal
// method calls the original body with defaults for the omitted ones.
//
// To start with optargen, add a build constraint to files containing optargen
// directives:
//
//	//go:build optargen
//
// Then annotate a function. The doc comment names the builder type and its
// terminal method. Each optional parameter is marked either with
// //optargen:zero, which defaults to the zero value, or with
// //optargen:default and a Go expression:
//
//	// source:
//	//
//	//optargen:builder JoinStringsBuilder Exec
//	func JoinStrings(
//		a string,
//		b string, //optargen:zero
//		c string, //optargen:default "ccc"
//	) string {
//		return a + b + c
//	}
//
//	// generated: (simplified)
//	func JoinStrings(a string) *JoinStringsBuilder { ... }
//	func (j *JoinStringsBuilder) B(b string) *JoinStringsBuilder { ... }
//	func (j *JoinStringsBuilder) C(c string) *JoinStringsBuilder { ... }
//	func (j *JoinStringsBuilder) Exec() string { ... }
//
// Code outside the optargen files calls the generated API:
//
//	JoinStrings("aaa").Exec()                   // "aaaccc"
//	JoinStrings("xxx").B("yyy").C("zzz").Exec() // "xxxyyyzzz"
//
// After annotating functions, run the optargen command. It will generate
// optargen_gen.go for your package:
//
//	go run github.com/sublee/optargen/cmd/optargen
//
// # Directives
//
// A directive is a line comment without a space after the slashes.
//
//	//optargen:builder <Builder> <Terminal>
//
// It must be in the doc comment of a function or a method. Builder is the name
// of the generated builder type and Terminal is the name of its method which
// executes the call. Setters are named after the optional parameters in title
// case.
//
//	//optargen:zero
//	//optargen:default <expr>
//
// They mark a parameter as optional. Write them at the end of the line of the
// parameter, or on the line before it. A default expression is evaluated each
// time the terminal runs without the parameter set. It may refer to anything
// visible at the function, except the parameters, the receiver, and the
// results of the function itself.
//
// Unmarked parameters are required. They keep their order in the entry point.
//
// # Builders
//
// A builder must not be copied and must be executed only once. go vet reports
// copies, and the terminal panics when it is called again.
//
// A setter called more than once keeps the last value. A variadic optional
// parameter is set with all arguments of its setter.
//
// # Restrictions
//
// A builder name must be new to the package. It must not be a predeclared
// identifier, the name of an imported package, or a parameter, receiver or
// type parameter of the function.
//
// Parameters must be named and not blank. A function cannot be annotated if
// it has no body, if it is init, or if a compiler directive like //go:linkname
// or //go:nosplit changes how it is linked or called. Code in optargen files
// must not use an annotated function directly, because it is replaced by the
// entry point. A free function may still call itself in its body.
package optargen
