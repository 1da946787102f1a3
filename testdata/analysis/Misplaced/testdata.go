//go:build optargen

package testdata

//optargen:zero // want `misplaced optargen:zero; it must annotate a parameter of a function with //optargen:builder`
var x = 1

// F is not annotated.
func F(
	a int, //optargen:zero // want `misplaced optargen:zero`
) {
}

type T struct{}

//optargen:builder MBuilder Exec
func (t T) M(
	//optargen:builder Inner Exec // want `optargen:builder must be in the doc comment of a function, not on a parameter`
	a int,
	b int, //optargen:zero
) {
}

func G() {
	//optargen:builder GBuilder Exec // want `misplaced optargen:builder; it must be in the doc comment of a function`
}

//optargen:builder RBuilder Exec
func (
	t *T, //optargen:zero // want `optargen:zero cannot annotate the receiver`
) R(
	a int, //optargen:zero
) {
}

//optargen:builder HBuilder Exec
func H(
	a int, //optargen:zero
	//optargen:default 1 // want `misplaced optargen:default`
) {
}
