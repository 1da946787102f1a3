//go:build optargen

package main

type Vec[T any] []T

// GetOr returns the element at i. If i is out of range, it returns fallback.
//
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
