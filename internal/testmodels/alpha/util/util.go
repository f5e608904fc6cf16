// Package util provides sizing helpers for widgets.
package util

// Clamp limits a size to the given bound.
//
// Parameters
// ----------
// size: int
//     The requested size.
// bound: int
//     The upper bound.
//
// Returns
// -------
// int
func Clamp(size, bound int) int {
	if size > bound {
		return bound
	}
	return size
}
