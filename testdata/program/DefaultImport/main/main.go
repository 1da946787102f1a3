package main

import (
	"fmt"
	"time"
)

func main() {
	fmt.Println(Wait("a").Exec())
	fmt.Println(Wait("b").D(500 * time.Millisecond).Exec())
	fmt.Println(Wait("c").Sep(":").Exec())
}
