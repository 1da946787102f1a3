//go:build optargen

package testdata
