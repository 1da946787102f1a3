package main

import "fmt"

func main() {
	fmt.Println(ID("a").Exec())
	fmt.Println(ID("b").N(10).Exec())
	fmt.Println(ID("c").Exec())

	// Defaults are evaluated by Exec, not when a builder is created.
	b := ID("d")
	fmt.Println(calls)
	fmt.Println(b.Exec())
	fmt.Println(calls)
}
