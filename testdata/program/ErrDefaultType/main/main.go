package main

func main() {
	panic("optargen will fail")
}
