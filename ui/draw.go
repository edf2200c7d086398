// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// CommandKind discriminates draw commands.
type CommandKind uint8

const (
	// KindRect fills an axis-aligned rectangle.
	KindRect CommandKind = iota

	// KindRoundedRect fills a rectangle with rounded corners.
	KindRoundedRect

	// KindText draws a run of text with its baseline-left origin at
	// (X, Y).
	KindText
)

// Command is one draw operation. Fields are interpreted per Kind;
// unused fields are zero.
type Command struct {
	Kind   CommandKind
	Rect   Rect
	Radius float32
	Color  RGBA
	Text   string
	X, Y   float32
}

// DrawList is the ordered output of building one frame. Commands are
// drawn back to front in append order. A DrawList is transient: it is
// rebuilt from scratch every frame and holds no cross-frame state.
type DrawList struct {
	cmds []Command
}

// FillRect appends a filled rectangle.
func (l *DrawList) FillRect(r Rect, c RGBA) {
	if r.IsEmpty() {
		return
	}
	l.cmds = append(l.cmds, Command{Kind: KindRect, Rect: r, Color: c})
}

// FillRoundedRect appends a filled rounded rectangle. A non-positive
// radius degrades to a plain rectangle.
func (l *DrawList) FillRoundedRect(r Rect, radius float32, c RGBA) {
	if r.IsEmpty() {
		return
	}
	if radius <= 0 {
		l.cmds = append(l.cmds, Command{Kind: KindRect, Rect: r, Color: c})
		return
	}
	half := min(r.W(), r.H()) / 2
	if radius > half {
		radius = half
	}
	l.cmds = append(l.cmds, Command{Kind: KindRoundedRect, Rect: r, Radius: radius, Color: c})
}

// Text appends a text run with baseline-left origin (x, y).
func (l *DrawList) Text(s string, x, y float32, c RGBA) {
	if s == "" {
		return
	}
	l.cmds = append(l.cmds, Command{Kind: KindText, Text: s, X: x, Y: y, Color: c})
}

// Commands returns the commands in draw order. The slice is owned by
// the list and valid until the next frame.
func (l *DrawList) Commands() []Command { return l.cmds }

// Len returns the number of commands.
func (l *DrawList) Len() int { return len(l.cmds) }
