// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import "github.com/gogpu/tally/ui"

// Default window parameters.
const (
	DefaultTitle  = "tally"
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Option configures an App.
type Option func(*App)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(a *App) {
		if title != "" {
			a.title = title
		}
	}
}

// WithSize sets the initial window size in logical pixels. Non-positive
// dimensions are ignored.
func WithSize(width, height int) Option {
	return func(a *App) {
		if width > 0 && height > 0 {
			a.width = width
			a.height = height
		}
	}
}

// WithTheme replaces the default theme.
func WithTheme(theme ui.Theme) Option {
	return func(a *App) {
		a.theme = theme
	}
}
