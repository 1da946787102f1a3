package main

import "fmt"

func main() {
	fmt.Println(JoinStrings("aaa").Exec())
	fmt.Println(JoinStrings("xxx").B("yyy").C("zzz").Exec())

	// Setters are independent of their order.
	fmt.Println(JoinStrings("xxx").C("zzz").B("yyy").Exec())

	// The last value wins.
	fmt.Println(JoinStrings("1").B("2").B("3").Exec())
}
