//go:build optargen

package main

import "errors"

// Div divides a by b.
//
//optargen:builder DivBuilder Exec
func Div(
	a int,
	b int, //optargen:default 1
) (q, r int, err error) {
	if b == 0 {
		err = errors.New("division by zero")
		return
	}
	return a / b, a % b, nil
}
