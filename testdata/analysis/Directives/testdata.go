//go:build optargen

package testdata

//optargen:builder // want `optargen:builder takes 2 arguments, got 0; usage: `
func A(a int) {}

//optargen:builder BBuilder 42 // want `optargen:builder needs identifiers, got "42"`
func B(a int) {}

// A broken directive suppresses the other directives of the function.
//
//optargen:bulder CBuilder Exec // want `unknown directive optargen:bulder; did you mean optargen:builder\?`
func C(
	a int, //optargen:zero
) {
}

//optargen: // want `missing directive name after "//optargen:"`
func D() {}

//optargen:builder EBuilder Exec
//optargen:builder EBuilder2 Exec // want `duplicate optargen:builder for E`
func E(
	a int, //optargen:zero 1 // want `optargen:zero takes no arguments`
	b int, //optargen:default // want `optargen:default needs an expression`
	c int, //optargen:zero
) {
}

// optargen:default with a space is an ordinary comment.
var _ = 0
