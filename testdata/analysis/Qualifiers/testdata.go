//go:build optargen

package testdata

import _ "unsafe"

//optargen:builder ABuilder Exec
//go:nosplit // want `cannot generate builder for A: //go:nosplit relaxes memory safety checks`
func A(
	a int, //optargen:zero
) {
}

//go:linkname B runtime.b // want `cannot generate builder for B: //go:linkname fixes the calling convention or the linkage`

//optargen:builder BBuilder Exec
func B(
	a int, //optargen:zero
) {
}
