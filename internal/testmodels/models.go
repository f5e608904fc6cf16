// Package testmodels provides a small documented API surface used to
// exercise package introspection.
package testmodels

import "fmt"

// Widget is a resizable rectangle.
type Widget struct {
	size int
}

// NewWidget builds a Widget.
//
// Parameters
// ----------
// size: int
//     The initial size.
func NewWidget(size int) *Widget {
	return &Widget{size: size}
}

// Resize changes the widget size.
//
// Parameters
// ----------
// size: int
//     The new size.
func (w *Widget) Resize(size int) {
	w.size = size
}

// Size reports the current size.
//
// Returns
// -------
// int
func (w *Widget) Size() int {
	return w.size
}

// Describe renders a widget as text.
//
// Parameters
// ----------
// w: Widget
//     The widget to describe.
func Describe(w *Widget) string {
	return fmt.Sprintf("widget of size %d", w.size)
}

// Stale has documentation that fell out of date: the documented
// parameter listing no longer matches the signature.
//
// Parameters
// ----------
// name: string
//     A name that no longer exists.
func Stale(count int, label string) string {
	return fmt.Sprintf("%s-%d", label, count)
}

// hidden is unexported and must never be documented.
func hidden() {}
