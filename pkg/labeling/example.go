package labeling

import (
	"fmt"
)

// Resource identifies the image an Example was detected in. It is
// opaque to synthesis.
type Resource struct {
	Path   string
	Width  int
	Height int
}

// UnknownBox is returned when an operation refers to a box that was
// never added to the Example.
type UnknownBox BoundingBox

func (e UnknownBox) Error() string {
	return fmt.Sprintf("%s is not part of the example", BoundingBox(e))
}

// Example is one labeled image: a set of boxes, each with a base label
// and any number of precise labels. Boxes keep their insertion order.
type Example struct {
	Resource Resource

	boxes  []BoundingBox
	labels map[BoundingBox][]Label
}

// NewExample returns an empty Example for the given resource.
func NewExample(resource Resource) *Example {
	return &Example{
		Resource: resource,
		labels:   make(map[BoundingBox][]Label),
	}
}

// AddBox records box with the given base label. Adding a box that is
// already present resets its labels but keeps its position.
func (e *Example) AddBox(box BoundingBox, base Label) {
	if e.labels == nil {
		e.labels = make(map[BoundingBox][]Label)
	}
	if _, ok := e.labels[box]; !ok {
		e.boxes = append(e.boxes, box)
	}
	e.labels[box] = []Label{base}
}

// MakePrecise adds a precise label to box. Adding a label the box
// already carries is a no-op.
func (e *Example) MakePrecise(box BoundingBox, label Label) error {
	ls, ok := e.labels[box]
	if !ok {
		return UnknownBox(box)
	}
	for _, l := range ls[1:] {
		if l == label {
			return nil
		}
	}
	e.labels[box] = append(ls, label)
	return nil
}

// ClearPrecise removes every precise label from box, keeping its base
// label.
func (e *Example) ClearPrecise(box BoundingBox) {
	if ls, ok := e.labels[box]; ok && len(ls) > 1 {
		e.labels[box] = ls[:1]
	}
}

// ClearAllPrecise removes the precise labels of every box.
func (e *Example) ClearAllPrecise() {
	for _, box := range e.boxes {
		e.ClearPrecise(box)
	}
}

// Base returns the base label of box and whether the box is present.
func (e *Example) Base(box BoundingBox) (Label, bool) {
	ls, ok := e.labels[box]
	if !ok {
		return "", false
	}
	return ls[0], true
}

// Precise returns a copy of the precise labels of box, in the order
// they were added.
func (e *Example) Precise(box BoundingBox) []Label {
	ls := e.labels[box]
	if len(ls) < 2 {
		return nil
	}
	out := make([]Label, len(ls)-1)
	copy(out, ls[1:])
	return out
}

// HasPrecise reports whether box carries the precise label.
func (e *Example) HasPrecise(box BoundingBox, label Label) bool {
	ls := e.labels[box]
	for i := 1; i < len(ls); i++ {
		if ls[i] == label {
			return true
		}
	}
	return false
}

// Boxes returns the boxes of the example in insertion order.
func (e *Example) Boxes() []BoundingBox {
	out := make([]BoundingBox, len(e.boxes))
	copy(out, e.boxes)
	return out
}

// Len returns the number of boxes.
func (e *Example) Len() int {
	return len(e.boxes)
}

// BoxesWith returns the boxes carrying label as either their base or
// one of their precise labels.
func (e *Example) BoxesWith(label Label) []BoundingBox {
	var out []BoundingBox
	for _, box := range e.boxes {
		for _, l := range e.labels[box] {
			if l == label {
				out = append(out, box)
				break
			}
		}
	}
	return out
}

// RemoveBoxes drops every box carrying label.
func (e *Example) RemoveBoxes(label Label) {
	drop := make(map[BoundingBox]struct{})
	for _, box := range e.BoxesWith(label) {
		drop[box] = struct{}{}
		delete(e.labels, box)
	}
	if len(drop) == 0 {
		return
	}
	kept := e.boxes[:0]
	for _, box := range e.boxes {
		if _, ok := drop[box]; !ok {
			kept = append(kept, box)
		}
	}
	e.boxes = kept
}
