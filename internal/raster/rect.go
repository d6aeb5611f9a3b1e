package raster

import "fmt"

// Rect is an axis-aligned box with inclusive bounds. A Rect with X0 > X1 or
// Y0 > Y1 is empty.
type Rect struct {
	X0, X1 int
	Y0, Y1 int
}

const emptyLow = 1<<31 - 1

// EmptyRect returns the empty sentinel. Growing it by one point yields a
// 1x1 rectangle at that point.
func EmptyRect() Rect {
	return Rect{X0: emptyLow, X1: -1, Y0: emptyLow, Y1: -1}
}

// FullRect covers a whole width x height surface.
func FullRect(width, height int) Rect {
	return Rect{X0: 0, X1: width - 1, Y0: 0, Y1: height - 1}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.X0 > r.X1 || r.Y0 > r.Y1
}

// Dx returns the number of columns covered.
func (r Rect) Dx() int {
	if r.Empty() {
		return 0
	}
	return r.X1 - r.X0 + 1
}

// Dy returns the number of rows covered.
func (r Rect) Dy() int {
	if r.Empty() {
		return 0
	}
	return r.Y1 - r.Y0 + 1
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Grow returns the smallest rectangle covering r and (x, y).
func (r Rect) Grow(x, y int) Rect {
	r.X0 = min(r.X0, x)
	r.X1 = max(r.X1, x)
	r.Y0 = min(r.Y0, y)
	r.Y1 = max(r.Y1, y)
	return r
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	switch {
	case o.Empty():
		return r
	case r.Empty():
		return o
	}
	return Rect{
		X0: min(r.X0, o.X0),
		X1: max(r.X1, o.X1),
		Y0: min(r.Y0, o.Y0),
		Y1: max(r.Y1, o.Y1),
	}
}

// Clip intersects r with a width x height surface.
func (r Rect) Clip(width, height int) Rect {
	if r.Empty() {
		return EmptyRect()
	}
	c := Rect{
		X0: max(r.X0, 0),
		X1: min(r.X1, width-1),
		Y0: max(r.Y0, 0),
		Y1: min(r.Y1, height-1),
	}
	if c.Empty() {
		return EmptyRect()
	}
	return c
}

func (r Rect) String() string {
	if r.Empty() {
		return "{empty}"
	}
	return fmt.Sprintf("{%d,%d,%d,%d}", r.X0, r.X1, r.Y0, r.Y1)
}
