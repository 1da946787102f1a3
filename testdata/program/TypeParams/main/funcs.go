//go:build optargen

package main

// Index returns the index of the first x in s at or after from.
//
//optargen:builder IndexBuilder Exec
func Index[S ~[]E, E comparable](
	s S,
	x E,
	from int, //optargen:zero
) int {
	for i := from; i < len(s); i++ {
		if s[i] == x {
			return i
		}
	}
	return -1
}

// Pair makes a pair. The second element can be given later.
//
//optargen:builder PairBuilder Build
func Pair[K comparable, V any](
	k K,
	v V, //optargen:zero
) string {
	return fmtPair(k, v)
}
