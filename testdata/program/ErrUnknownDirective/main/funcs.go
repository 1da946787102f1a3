//go:build optargen

package main

//optargen:builder GreetBuilder Exec
func Greet(
	name string,
	greeting string, //optargen:defualt "Hello"
) string {
	return greeting + ", " + name
}
