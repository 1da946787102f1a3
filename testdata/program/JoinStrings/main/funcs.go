//go:build optargen

package main

// JoinStrings joins three strings.
//
//optargen:builder JoinStringsBuilder Exec
func JoinStrings(
	a string,
	b string, //optargen:zero
	c string, //optargen:default "ccc"
) string {
	return a + b + c
}
