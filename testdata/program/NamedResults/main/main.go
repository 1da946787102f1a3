package main

import "fmt"

func main() {
	fmt.Println(Div(7).Exec())
	fmt.Println(Div(7).B(2).Exec())
	fmt.Println(Div(7).B(0).Exec())
}
