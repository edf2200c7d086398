// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// RGBA is a straight-alpha color with components in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// RGB returns an opaque color.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Rect is an axis-aligned rectangle in pixels, y growing downward.
type Rect struct {
	MinX, MinY, MaxX, MaxY float32
}

// NewRect returns a Rect from origin and size.
func NewRect(x, y, w, h float32) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

// W returns the rectangle width.
func (r Rect) W() float32 { return r.MaxX - r.MinX }

// H returns the rectangle height.
func (r Rect) H() float32 { return r.MaxY - r.MinY }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.MaxX <= r.MinX || r.MaxY <= r.MinY
}

// Contains reports whether the point (x, y) is inside the rectangle.
// Edges count as inside on the min side and outside on the max side,
// so adjacent rectangles do not both claim a point.
func (r Rect) Contains(x, y float32) bool {
	return x >= r.MinX && x < r.MaxX && y >= r.MinY && y < r.MaxY
}
