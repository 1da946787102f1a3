//go:build optargen

package main

import "fmt"

var calls int

func next() int {
	calls++
	return calls
}

// ID formats an identifier. Without n, the next sequence number is used.
//
//optargen:builder IDBuilder Exec
func ID(
	prefix string,
	n int, //optargen:default next()
) string {
	return fmt.Sprintf("%s-%d", prefix, n)
}
