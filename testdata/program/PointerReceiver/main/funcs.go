//go:build optargen

package main

type Counter struct {
	n int
}

// Add adds delta to the counter and returns the new count.
//
//optargen:builder AddBuilder Do
func (c *Counter) Add(
	delta int, //optargen:default 1
) int {
	c.n += delta
	return c.n
}

// Reset sets the counter.
//
//optargen:builder ResetBuilder Do
func (c *Counter) Reset(
	n int, //optargen:zero
) {
	c.n = n
}
