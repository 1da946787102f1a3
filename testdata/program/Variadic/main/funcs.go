//go:build optargen

package main

import "strings"

// Join joins parts with sep.
//
//optargen:builder JoinBuilder Exec
func Join(
	sep string, //optargen:default ", "
	parts ...string, //optargen:zero
) string {
	return strings.Join(parts, sep)
}

// Sum adds up xs and multiplies the sum by scale.
//
//optargen:builder SumBuilder Exec
func Sum(
	scale int, //optargen:default 1
	xs ...int,
) int {
	sum := 0
	for _, x := range xs {
		sum += x
	}
	return sum * scale
}
