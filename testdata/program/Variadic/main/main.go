package main

import "fmt"

func main() {
	fmt.Printf("%q\n", Join().Exec())
	fmt.Printf("%q\n", Join().Parts("a", "b").Exec())
	fmt.Printf("%q\n", Join().Sep("-").Parts("x", "y", "z").Exec())

	parts := []string{"p", "q"}
	fmt.Printf("%q\n", Join().Parts(parts...).Exec())

	fmt.Println(Sum(1, 2, 3).Exec())
	fmt.Println(Sum(1, 2, 3).Scale(10).Exec())
	fmt.Println(Sum().Exec())
}
