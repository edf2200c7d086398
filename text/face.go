// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics holds face-level vertical metrics in pixels.
type Metrics struct {
	// Ascent is the distance from the baseline to the top of the face
	// (positive, above the baseline).
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the
	// face (positive, below the baseline).
	Descent float64

	// LineHeight is the recommended distance between baselines.
	LineHeight float64
}

// Face is a FontSource at a specific pixel size.
// Face is a lightweight value; create as many as needed.
//
// Face methods that shape text share a pooled HarfBuzz shaper and are
// safe for concurrent use.
type Face struct {
	source *FontSource
	size   float64
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource { return f.source }

// Size returns the face size in pixels.
func (f *Face) Size() float64 { return f.size }

// Metrics returns the vertical metrics at this face's size.
func (f *Face) Metrics() Metrics {
	var buf sfnt.Buffer
	m, err := f.source.sfnt.Metrics(&buf, fixed.Int26_6(f.size*64), font.HintingFull)
	if err != nil {
		// Degenerate fallback proportional to size; only reachable
		// with a malformed font table.
		return Metrics{Ascent: f.size * 0.8, Descent: f.size * 0.2, LineHeight: f.size * 1.2}
	}
	return Metrics{
		Ascent:     fixedToFloat(m.Ascent),
		Descent:    fixedToFloat(m.Descent),
		LineHeight: fixedToFloat(m.Height),
	}
}

// Advance returns the total advance width of the text in pixels,
// using shaped glyph advances so measurement matches rendering.
func (f *Face) Advance(text string) float64 {
	var w float64
	for _, g := range f.Shape(text) {
		w += g.Advance
	}
	return w
}
