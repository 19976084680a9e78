package labeling

import (
	"fmt"
	"math"
	"sort"
)

// BoundingBox is an axis-aligned region of an image in normalized
// coordinates. It is comparable and is used as a map key by value.
type BoundingBox struct {
	Left   float64 `json:"Left"`
	Top    float64 `json:"Top"`
	Width  float64 `json:"Width"`
	Height float64 `json:"Height"`
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("box(%g,%g,%g,%g)", b.Left, b.Top, b.Width, b.Height)
}

// Area returns the area of the box, or zero for degenerate boxes.
func (b BoundingBox) Area() float64 {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// ToAbsolute scales the box from normalized coordinates to pixel
// coordinates of an image with the given dimensions.
func (b BoundingBox) ToAbsolute(width, height int) BoundingBox {
	w, h := float64(width), float64(height)
	return BoundingBox{
		Left:   b.Left * w,
		Top:    b.Top * h,
		Width:  b.Width * w,
		Height: b.Height * h,
	}
}

func (b BoundingBox) right() float64  { return b.Left + b.Width }
func (b BoundingBox) bottom() float64 { return b.Top + b.Height }

func (b BoundingBox) intersection(other BoundingBox) float64 {
	w := math.Max(0, math.Min(b.right(), other.right())-math.Max(b.Left, other.Left))
	h := math.Max(0, math.Min(b.bottom(), other.bottom())-math.Max(b.Top, other.Top))
	return w * h
}

// JaccardIndex returns the intersection area over the union area of
// the two boxes. Two boxes without any area have an index of zero.
func (b BoundingBox) JaccardIndex(other BoundingBox) float64 {
	inter := b.intersection(other)
	union := b.Area() + other.Area() - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// ContainmentFraction returns the fraction of the receiver's area that
// is covered by other.
func (b BoundingBox) ContainmentFraction(other BoundingBox) float64 {
	area := b.Area()
	if area == 0 {
		return 0
	}
	return b.intersection(other) / area
}

// RelationFunc is a continuous geometric relation between two boxes
// with values in [0, 1].
type RelationFunc func(a, b BoundingBox) float64

const (
	// IoU is the overlap ratio (intersection over union) of two boxes.
	IoU = "iou"
	// Containment is the fraction of the first box covered by the second.
	Containment = "containment"
)

var relations = map[string]RelationFunc{
	IoU:         BoundingBox.JaccardIndex,
	Containment: BoundingBox.ContainmentFraction,
}

// LookupRelation returns the relation registered under name.
func LookupRelation(name string) (RelationFunc, bool) {
	fn, ok := relations[name]
	return fn, ok
}

// RelationNames returns the names of all registered relations in
// lexical order.
func RelationNames() []string {
	names := make([]string, 0, len(relations))
	for name := range relations {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
