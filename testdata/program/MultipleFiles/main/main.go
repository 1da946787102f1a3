package main

import "fmt"

func main() {
	fmt.Println(Shout("hey").Exec())
	fmt.Println(Whisper("HEY").Exec())
	fmt.Println(Shout("hey").Suffix("?").Exec())
}
