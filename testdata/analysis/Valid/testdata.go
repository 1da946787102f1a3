//go:build optargen

package testdata

import "strings"

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

type Vec[T any] []T

//optargen:builder GetOrBuilder Exec
func (v Vec[T]) GetOr(
	i int,
	fallback T, //optargen:zero
) T {
	if i < 0 || i >= len(v) {
		return fallback
	}
	return v[i]
}

//optargen:builder JoinBuilder Exec
func Join(
	//optargen:default strings.Repeat(" ", 1)
	sep string,
	parts ...string, //optargen:zero
) string {
	return strings.Join(parts, sep)
}
