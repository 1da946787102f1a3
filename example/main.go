// Command optargenexample shows builders generated by optargen. Run
// "go generate" to generate optargen_gen.go before building it.
package main

//go:generate go tool optargen

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"
)

func main() {
	ctx := context.Background()

	calls := 0
	flaky := func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("not yet")
		}
		return nil
	}

	err := Retry(ctx, flaky).
		Backoff(10 * time.Millisecond).
		Logf(log.Printf).
		Do()
	fmt.Println("retry:", err, "after", calls, "calls")

	err = Retry(ctx, func(context.Context) error { return errors.New("never") }).
		Attempts(2).
		Backoff(time.Millisecond).
		Do()
	fmt.Println("retry:", err)

	s := &Server{Name: "optargen"}
	fmt.Println(s.Greet("Gopher").Exec())
	fmt.Println(s.Greet("Gopher").Greeting("Hi").Shout(true).Exec())
}
