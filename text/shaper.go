// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"sync"

	"github.com/go-text/typesetting/di"
	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// Glyph is one shaped, positioned glyph in a run of text.
// Positions are in pixels, relative to the run origin on the baseline,
// with y growing downward.
type Glyph struct {
	// Rune is the source rune this glyph was shaped from, resolved
	// through the shaper's cluster mapping. The atlas rasterizes by
	// rune, which is exact for the Latin UI strings this demo draws.
	Rune rune

	// X, Y is the pen position for this glyph including shaping
	// offsets (kerning etc.).
	X, Y float64

	// Advance is the horizontal advance to the next pen position.
	Advance float64
}

// shaperPool pools HarfbuzzShaper instances. HarfbuzzShaper has
// internal mutable state and is NOT safe for concurrent use, but
// reusing instances across sequential calls is efficient.
var shaperPool = sync.Pool{
	New: func() any {
		return &shaping.HarfbuzzShaper{}
	},
}

// Shape converts text into positioned glyphs using HarfBuzz shaping,
// so the UI gets kerning-correct labels even at demo scale.
func (f *Face) Shape(text string) []Glyph {
	if text == "" {
		return nil
	}

	// font.Face is NOT safe for concurrent use, so each Shape call
	// gets its own lightweight instance wrapping the shared *Font.
	goTextFace := gotextfont.NewFace(f.source.shaped)

	runes := []rune(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      goTextFace,
		Size:      floatToFixed(f.size),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	hb := shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	shaperPool.Put(hb)

	if len(output.Glyphs) == 0 {
		return nil
	}

	result := make([]Glyph, len(output.Glyphs))
	var x float64
	for i, g := range output.Glyphs {
		r := rune(0xFFFD)
		if ti := g.TextIndex(); ti >= 0 && ti < len(runes) {
			r = runes[ti]
		}
		adv := fixedToFloat(g.Advance)
		result[i] = Glyph{
			Rune:    r,
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset), // shaper y is up, ours is down
			Advance: adv,
		}
		x += adv
	}
	return result
}

// floatToFixed converts a float64 pixel size to fixed.Int26_6.
func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

// fixedToFloat converts a fixed.Int26_6 value to float64.
func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}
