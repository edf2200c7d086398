// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"strconv"

	"github.com/gogpu/tally"
)

// Button captions, in declaration order.
const (
	labelDecrement = "-1"
	labelIncrement = "+1"
	labelReset     = "Reset"
	labelHeading   = "tally"
)

// counterLayout holds the per-frame widget geometry, recomputed from
// the viewport size every frame.
type counterLayout struct {
	heading float32 // top edge of the heading line
	minus   Rect
	plus    Rect
	reset   Rect
	value   float32 // top edge of the value line
}

// layoutCounter centers the heading / button row / value column in the
// viewport.
func layoutCounter(f *Frame) counterLayout {
	t := f.theme
	ascent, descent := f.lineExtent()
	line := ascent + descent

	mw, bh := f.ButtonSize(labelDecrement)
	pw, _ := f.ButtonSize(labelIncrement)
	rw, _ := f.ButtonSize(labelReset)
	rowW := mw + pw + rw + 2*t.Spacing

	groupH := line + t.Spacing + bh + t.Spacing + line
	top := (f.h - groupH) / 2

	rowY := top + line + t.Spacing
	rowX := (f.w - rowW) / 2

	var lay counterLayout
	lay.heading = top
	lay.minus = NewRect(rowX, rowY, mw, bh)
	lay.plus = NewRect(rowX+mw+t.Spacing, rowY, pw, bh)
	lay.reset = NewRect(rowX+mw+pw+2*t.Spacing, rowY, rw, bh)
	lay.value = rowY + bh + t.Spacing
	return lay
}

// BuildCounter declares the complete counter interface for one frame.
// Button activation mutates the counter before the value label is
// emitted, so the frame that registers a click already shows the new
// value.
func BuildCounter(f *Frame, c *tally.Counter) *DrawList {
	t := f.theme
	lay := layoutCounter(f)

	f.list.FillRect(NewRect(0, 0, f.w, f.h), t.Background)
	f.LabelCentered(labelHeading, lay.heading, t.Heading)

	if f.Button(labelDecrement, lay.minus) {
		c.Decrement()
	}
	if f.Button(labelIncrement, lay.plus) {
		c.Increment()
	}
	if f.Button(labelReset, lay.reset) {
		c.Reset()
	}

	f.LabelCentered("Count: "+strconv.FormatInt(c.Value(), 10), lay.value, t.Text)
	return f.List()
}
