package main

import "fmt"

type names []string

func main() {
	fmt.Println(Index([]string{"a", "b", "a"}, "a").Exec())
	fmt.Println(Index([]string{"a", "b", "a"}, "a").From(1).Exec())
	fmt.Println(Index(names{"x"}, "y").Exec())

	// V appears only in an optional parameter, so it cannot be inferred.
	fmt.Println(Pair[string, int]("n").Build())
	fmt.Println(Pair[string, float64]("pi").V(3.14).Build())
}
