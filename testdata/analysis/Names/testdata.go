//go:build optargen

package testdata

import "strings"

type Taken struct{}

//optargen:builder Taken Exec // want `builder name Taken is already declared`
func A(
	a int, //optargen:zero
) {
}

//optargen:builder _ Exec // want `builder name must not be blank`
func B(
	a int, //optargen:zero
) {
}

//optargen:builder CBuilder _ // want `terminal name must not be blank`
func C(
	a int, //optargen:zero
) {
}

//optargen:builder DBuilder Exec // want `methods of builder DBuilder collide`
func D(
	v int, //optargen:zero
	V int, //optargen:zero
) {
}

//optargen:builder EBuilder Exec
func E(
	_ int, // want `parameter 1 of E must not be blank`
	b int, //optargen:zero
) {
}

//optargen:builder FBuilder Exec
func F(
	//optargen:zero
	a int, //optargen:default 1 // want `parameter a has multiple roles`
) {
}

//optargen:builder DupBuilder Exec
func G(
	a int, //optargen:zero
) {
}

//optargen:builder DupBuilder Exec // want `builder name DupBuilder is already declared`
func H(
	a int, //optargen:zero
) {
}

//optargen:builder Opts Exec // want `builder name Opts conflicts with parameter Opts of I`
func I(
	Opts string,
	suffix string, //optargen:default "!"
) string {
	return Opts + suffix
}

//optargen:builder T Exec // want `builder name T conflicts with type parameter T of J`
func J[T any](
	x T, //optargen:zero
) T {
	return x
}

//optargen:builder string Exec // want `builder name string shadows the predeclared identifier`
func K(
	a int, //optargen:zero
) {
}

//optargen:builder strings Exec // want `builder name strings conflicts with an imported package`
func L(
	s string, //optargen:zero
) string {
	return strings.ToUpper(s)
}

type Vec[E any] []E

//optargen:builder E Exec // want `builder name E conflicts with receiver type parameter E of At`
func (v Vec[E]) At(
	i int, //optargen:zero
) E {
	return v[i]
}
