package main

import "fmt"

func fmtPair(k, v any) string {
	return fmt.Sprintf("%v=%v", k, v)
}
