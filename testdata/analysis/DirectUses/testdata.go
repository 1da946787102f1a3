//go:build optargen

package testdata

//optargen:builder IDBuilder Exec
func ID(
	a int,
	b int, //optargen:zero
) int {
	return a + b
}

var f = ID // want `cannot use ID directly; optargen replaces it with an entry point returning \*IDBuilder`

func use() int {
	return ID(1, 2) // want `cannot use ID directly`
}

//optargen:builder FactBuilder Exec
func Fact(
	n int,
	acc int, //optargen:default 1
) int {
	if n <= 1 {
		return acc
	}
	return Fact(n-1, acc*n) // ok
}

//optargen:builder PeekBuilder Exec
func Peek(
	n int, //optargen:default ID(1, 2) // want `cannot use ID directly`
) int {
	return n
}
