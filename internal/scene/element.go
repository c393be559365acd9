// Package scene is an in-memory element tree: elements addressed by id or
// class, each with mutable text, geometry and style.
package scene

import "slices"

// Kind is the element type.
type Kind string

const (
	KindContainer Kind = "container"
	KindRect      Kind = "rect"
	KindText      Kind = "text"
	KindLine      Kind = "line"
)

// Anchor is the horizontal alignment of a text element around X.
type Anchor string

const (
	AnchorStart  Anchor = "start"
	AnchorMiddle Anchor = "middle"
	AnchorEnd    Anchor = "end"
)

// Style holds the paint properties of an element.
type Style struct {
	Fill    string
	Opacity float64
}

// Element is a mutable handle to one node of the document.
type Element struct {
	ID     string
	Class  []string
	Kind   Kind
	Text   string
	Anchor Anchor

	// Box geometry (container, rect, text position).
	X, Y, Width, Height int

	// Line endpoints.
	X1, Y1, X2, Y2 int

	Style Style

	onMouseUp func()
}

// HasClass reports whether the element carries the class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.Class, class)
}

// SetOnMouseUp replaces the mouse-up (tap release) handler.
func (e *Element) SetOnMouseUp(fn func()) {
	e.onMouseUp = fn
}

// MouseUp delivers a tap release to the element.
func (e *Element) MouseUp() {
	if e.onMouseUp != nil {
		e.onMouseUp()
	}
}

// Visible reports whether the element paints anything.
func (e *Element) Visible() bool {
	return e.Style.Opacity > 0
}
