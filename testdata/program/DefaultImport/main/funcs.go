//go:build optargen

package main

import (
	"fmt"
	"strings"
	"time"
)

// Wait describes a wait.
//
//optargen:builder WaitBuilder Exec
func Wait(
	label string,
	d time.Duration, //optargen:default 3 * time.Second
	// Only the default expression uses strings.
	//optargen:default strings.Repeat("-", 3)
	sep string,
) string {
	return fmt.Sprint(label, sep, d)
}
