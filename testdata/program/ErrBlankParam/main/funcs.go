//go:build optargen

package main

//optargen:builder FBuilder Exec
func F(
	_ int,
	b int, //optargen:zero
) int {
	return b
}

//optargen:builder GBuilder Exec
func G(
	int, //optargen:zero
) {
}
