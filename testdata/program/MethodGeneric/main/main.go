package main

import "fmt"

func main() {
	v := Vec[int]{2, 4, 6}
	fmt.Println(v.GetOr(1).Exec())
	fmt.Println(v.GetOr(5).Exec())
	fmt.Println(v.GetOr(5).Fallback(42).Exec())

	w := Vec[string]{"a"}
	fmt.Printf("%q\n", w.GetOr(1).Exec())
	fmt.Printf("%q\n", w.GetOr(1).Fallback("z").Exec())
}
