//go:build optargen

package main

import (
	"context"
	"fmt"
	"time"
)

// Retry calls op until it succeeds or all attempts fail. It waits backoff
// after the first failure and doubles the wait after each further failure.
//
//optargen:builder RetryBuilder Do
func Retry(
	ctx context.Context,
	op func(context.Context) error,
	attempts int, //optargen:default 3
	backoff time.Duration, //optargen:default 100 * time.Millisecond
	logf func(format string, args ...any), //optargen:zero
) error {
	var err error
	for i := range attempts {
		if err = op(ctx); err == nil {
			return nil
		}
		if logf != nil {
			logf("attempt %d/%d failed: %v", i+1, attempts, err)
		}
		if i == attempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return fmt.Errorf("gave up after %d attempts: %w", attempts, err)
}

type Server struct {
	Name string
}

// Greet greets a visitor.
//
//optargen:builder GreetBuilder Exec
func (s *Server) Greet(
	visitor string,
	greeting string, //optargen:default "Hello"
	//optargen:zero
	shout bool,
) string {
	msg := fmt.Sprintf("%s, %s! This is %s.", greeting, visitor, s.Name)
	if shout {
		msg = fmt.Sprintf("%s!!", msg)
	}
	return msg
}
