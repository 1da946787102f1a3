//go:build optargen

package main

import "strings"

// Whisper lower-cases s and appends a suffix.
//
//optargen:builder WhisperBuilder Exec
func Whisper(
	s string,
	suffix string, //optargen:default strings.Repeat(".", 3)
) string {
	return strings.ToLower(s) + suffix
}
