// Package util provides labeling helpers for widgets.
package util

import "strings"

// Join concatenates label parts with a dash.
//
// Parameters
// ----------
// parts: ...string
//     The label parts.
//
// Returns
// -------
// string
func Join(parts ...string) string {
	return strings.Join(parts, "-")
}
