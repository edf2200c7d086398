// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Input is the pointer state a frame is built against. The event loop
// accumulates window events into an Input, builds the frame, then
// calls EndFrame to clear the edge-triggered state.
type Input struct {
	// X, Y is the current cursor position in physical pixels.
	X, Y float32

	// Down reports whether the primary button is currently held.
	Down bool

	// Released is true only on the frame the primary button went up.
	Released bool

	// PressX, PressY is where the current (or just-released) press
	// began. A button activates only if its bounds contain both the
	// press origin and the release position.
	PressX, PressY float32
}

// EndFrame clears the edge-triggered release after a frame consumed
// it. Position, press origin, and Down state persist across frames.
func (in *Input) EndFrame() {
	in.Released = false
}
