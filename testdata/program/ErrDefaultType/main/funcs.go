//go:build optargen

package main

import "strings"

//optargen:builder RepeatBuilder Exec
func Repeat(
	s string,
	n int, //optargen:default "3"
	sep string, //optargen:default n
) string {
	return strings.Repeat(s+sep, n)
}
