//go:build optargen

package main

import str "strings"

// Shout upper-cases s and appends a suffix.
//
//optargen:builder ShoutBuilder Exec
func Shout(
	s string,
	suffix string, //optargen:default "!"
) string {
	return str.ToUpper(s) + suffix
}
