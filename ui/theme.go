// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ui

// Theme holds the colors and base metrics of the UI. Metric fields are
// in logical pixels; Scaled produces a physical-pixel theme for the
// window's content scale.
type Theme struct {
	Background   RGBA
	Text         RGBA
	Heading      RGBA
	Button       RGBA
	ButtonHover  RGBA
	ButtonActive RGBA

	// FontSize is the UI font size.
	FontSize float32

	// ButtonPadX, ButtonPadY pad button labels horizontally and
	// vertically.
	ButtonPadX, ButtonPadY float32

	// Spacing separates stacked UI elements.
	Spacing float32

	// CornerRadius rounds button corners.
	CornerRadius float32
}

// DefaultTheme returns the dark theme the demo ships with.
func DefaultTheme() Theme {
	return Theme{
		Background:   RGBA{R: 0.10, G: 0.10, B: 0.12, A: 1},
		Text:         RGBA{R: 0.92, G: 0.92, B: 0.94, A: 1},
		Heading:      RGBA{R: 0.65, G: 0.75, B: 0.95, A: 1},
		Button:       RGBA{R: 0.22, G: 0.22, B: 0.26, A: 1},
		ButtonHover:  RGBA{R: 0.30, G: 0.30, B: 0.36, A: 1},
		ButtonActive: RGBA{R: 0.16, G: 0.16, B: 0.20, A: 1},
		FontSize:     18,
		ButtonPadX:   14,
		ButtonPadY:   8,
		Spacing:      16,
		CornerRadius: 6,
	}
}

// Scaled returns a copy with all metric fields multiplied by factor.
// Colors are unchanged. Factor values <= 0 fall back to 1.
func (t Theme) Scaled(factor float32) Theme {
	if factor <= 0 {
		factor = 1
	}
	t.FontSize *= factor
	t.ButtonPadX *= factor
	t.ButtonPadY *= factor
	t.Spacing *= factor
	t.CornerRadius *= factor
	return t
}
