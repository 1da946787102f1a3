package main

import "fmt"

func main() {
	var c Counter
	fmt.Println(c.Add().Do())
	fmt.Println(c.Add().Delta(5).Do())

	c.Reset().N(100).Do()
	fmt.Println(c.n)
	c.Reset().Do()
	fmt.Println(c.n)
}
