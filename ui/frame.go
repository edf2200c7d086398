// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

import (
	"github.com/gogpu/tally/text"
)

// Frame builds the UI for a single frame. It is a pure function of
// (input, viewport size, theme, application state): construct one,
// declare widgets, take the DrawList, and discard it.
//
// Frame is NOT safe for concurrent use and must not outlive the frame
// it was built for.
type Frame struct {
	list  DrawList
	in    Input
	w, h  float32
	theme Theme
	face  *text.Face
}

// NewFrame starts a frame for the given pointer input, viewport size
// in physical pixels, theme (already scaled to physical pixels), and
// measuring face.
func NewFrame(in Input, w, h float32, theme Theme, face *text.Face) *Frame {
	return &Frame{in: in, w: w, h: h, theme: theme, face: face}
}

// Theme returns the frame's theme.
func (f *Frame) Theme() Theme { return f.theme }

// Size returns the frame's viewport size in physical pixels.
func (f *Frame) Size() (w, h float32) { return f.w, f.h }

// List returns the draw commands declared so far.
func (f *Frame) List() *DrawList { return &f.list }

// MeasureText returns the shaped width of s at the UI font size.
func (f *Frame) MeasureText(s string) float32 {
	return float32(f.face.Advance(s))
}

// lineExtent returns ascent and descent of the UI face in pixels.
func (f *Frame) lineExtent() (ascent, descent float32) {
	m := f.face.Metrics()
	return float32(m.Ascent), float32(m.Descent)
}

// Label draws s with its top-left corner at (x, y).
func (f *Frame) Label(s string, x, y float32, c RGBA) {
	ascent, _ := f.lineExtent()
	f.list.Text(s, x, y+ascent, c)
}

// LabelCentered draws s horizontally centered in the viewport with its
// top edge at y.
func (f *Frame) LabelCentered(s string, y float32, c RGBA) {
	f.Label(s, (f.w-f.MeasureText(s))/2, y, c)
}

// Button declares a button with the given label and bounds, and
// reports whether it was activated this frame. Activation requires the
// press to have begun inside the bounds and the release to land inside
// them, both within the frame the button is drawn.
func (f *Frame) Button(label string, r Rect) bool {
	hovered := r.Contains(f.in.X, f.in.Y)
	pressBegan := r.Contains(f.in.PressX, f.in.PressY)
	held := f.in.Down && pressBegan && hovered
	activated := f.in.Released && pressBegan && hovered

	fill := f.theme.Button
	switch {
	case held:
		fill = f.theme.ButtonActive
	case hovered:
		fill = f.theme.ButtonHover
	}
	f.list.FillRoundedRect(r, f.theme.CornerRadius, fill)

	ascent, descent := f.lineExtent()
	tw := f.MeasureText(label)
	tx := r.MinX + (r.W()-tw)/2
	ty := r.MinY + (r.H()-(ascent+descent))/2 + ascent
	f.list.Text(label, tx, ty, f.theme.Text)

	return activated
}

// ButtonSize returns the bounds a button needs for the given label at
// the current theme's padding.
func (f *Frame) ButtonSize(label string) (w, h float32) {
	ascent, descent := f.lineExtent()
	return f.MeasureText(label) + 2*f.theme.ButtonPadX,
		ascent + descent + 2*f.theme.ButtonPadY
}
