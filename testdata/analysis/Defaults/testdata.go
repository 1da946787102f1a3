//go:build optargen

package testdata

//optargen:builder FBuilder Exec
func F(
	a int,
	b int, //optargen:default a + 1 // want `default expression must not refer to parameter a`
	c int, //optargen:default "x" // want `cannot use "x" \(untyped string\) as int value in default of parameter c`
	d int, //optargen:default undefinedName // want `invalid default expression: undefined: undefinedName`
	e int, //optargen:default int // want `default expression int is not a value`
	f int, //optargen:default 1 + // want `invalid default expression: expected operand`
	g int, //optargen:default r // want `default expression must not refer to result r`
) (r int) {
	return
}

type T struct{ n int }

//optargen:builder MBuilder Exec
func (t T) M(
	n int, //optargen:default t.n // want `default expression must not refer to receiver t`
) {
}

const answer = 42

//optargen:builder OKBuilder Exec
func OK(
	a int, //optargen:default answer
	b int64, //optargen:default answer * 2
	c []int, //optargen:default []int{answer}
	d any, //optargen:default "any value"
) {
}
