// Package util provides common utility functions.
package util

// Must2 returns v or panics with e when it is not nil.
func Must2[T any](v T, e error) T {
	if e != nil {
		panic(e)
	}
	return v
}
