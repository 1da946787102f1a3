package main

import "fmt"

func try(f func()) {
	defer func() {
		fmt.Println("panic:", recover())
	}()
	f()
}

func main() {
	b := Greet("Go")
	fmt.Println(b.Exec())

	try(func() { b.Exec() })
	try(func() { b.Greeting("Hi") })

	fmt.Println(Greet("Go").Greeting("Hi").Exec())
}
