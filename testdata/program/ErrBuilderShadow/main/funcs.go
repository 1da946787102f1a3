//go:build optargen

package main

//optargen:builder Opts Exec
func Greet(
	Opts string,
	suffix string, //optargen:default "!"
) string {
	return Opts + suffix
}
