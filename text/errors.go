// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import "errors"

// Common errors returned by the text package.
var (
	// ErrEmptyFontData is returned when NewFontSource is given no data.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrAtlasFull is returned when a glyph does not fit in the atlas page.
	ErrAtlasFull = errors.New("text: glyph atlas page is full")
)
