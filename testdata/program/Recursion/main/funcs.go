//go:build optargen

package main

// Fact computes n! multiplied by acc.
//
//optargen:builder FactBuilder Exec
func Fact(
	n int,
	acc int, //optargen:default 1
) int {
	if n <= 1 {
		return acc
	}
	return Fact(n-1, acc*n)
}
