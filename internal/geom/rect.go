// Package geom provides the screen rectangle type shared by the surface layer
// and the region pool.
package geom

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Rect is a half-open screen rectangle: columns [Left, Right), rows [Top, Bottom).
type Rect struct {
	Left, Top, Right, Bottom int
}

// R is shorthand for Rect{left, top, right, bottom}.
func R(left, top, right, bottom int) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// WH returns the rectangle of size w x h at (left, top).
func WH(left, top, w, h int) Rect {
	return Rect{Left: left, Top: top, Right: left + w, Bottom: top + h}
}

// Dx returns the width, or 0 for an inverted rectangle.
func (r Rect) Dx() int {
	return max(r.Right-r.Left, 0)
}

// Dy returns the height, or 0 for an inverted rectangle.
func (r Rect) Dy() int {
	return max(r.Bottom-r.Top, 0)
}

// Empty reports whether r contains no pixels.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Overlaps reports whether r and s share at least one pixel.
// Empty rectangles never overlap anything.
func (r Rect) Overlaps(s Rect) bool {
	if r.Empty() || s.Empty() {
		return false
	}
	return r.Left < s.Right && r.Right > s.Left &&
		r.Top < s.Bottom && r.Bottom > s.Top
}

// Intersect returns the largest rectangle contained in both r and s.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	out := Rect{
		Left:   max(r.Left, s.Left),
		Top:    max(r.Top, s.Top),
		Right:  min(r.Right, s.Right),
		Bottom: min(r.Bottom, s.Bottom),
	}
	if out.Empty() {
		return Rect{}
	}
	return out
}

// In reports whether every pixel of r lies inside s.
func (r Rect) In(s Rect) bool {
	if r.Empty() {
		return true
	}
	return r.Left >= s.Left && r.Right <= s.Right &&
		r.Top >= s.Top && r.Bottom <= s.Bottom
}

// ClipBottom returns r with its bottom edge moved up to at most limit.
func (r Rect) ClipBottom(limit int) Rect {
	r.Bottom = Clamp(r.Bottom, r.Top, limit)
	return r
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// Clamp limits v to [lo, hi]. When hi < lo, lo wins.
func Clamp[T constraints.Integer](v, lo, hi T) T {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
