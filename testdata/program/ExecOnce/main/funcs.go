//go:build optargen

package main

// Greet greets someone.
//
//optargen:builder GreetBuilder Exec
func Greet(
	name string,
	greeting string, //optargen:default "Hello"
) string {
	return greeting + ", " + name
}
