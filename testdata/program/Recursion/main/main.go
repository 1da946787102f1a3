package main

import "fmt"

func main() {
	fmt.Println(Fact(5).Exec())
	fmt.Println(Fact(3).Acc(2).Exec())
	fmt.Println(Fact(0).Exec())
}
