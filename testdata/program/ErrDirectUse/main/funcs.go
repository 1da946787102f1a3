//go:build optargen

package main

//optargen:builder AddBuilder Exec
func Add(
	a int,
	b int, //optargen:default 1
) int {
	return a + b
}

func Twice(x int) int {
	return Add(x, x)
}
