// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"bytes"
	"fmt"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// FontSource represents a loaded font file.
// One FontSource can create multiple Face instances at different sizes.
// FontSource is heavyweight and should be shared across the application.
//
// The font data is parsed twice on creation: once with
// golang.org/x/image/font/opentype for metrics and rasterization, and
// once with go-text/typesetting for shaping. Both parsed forms are
// read-only afterwards, so FontSource is safe for concurrent use.
type FontSource struct {
	data   []byte
	sfnt   *opentype.Font
	shaped *gotextfont.Font
	name   string
}

// NewFontSource creates a FontSource from font data (TTF or OTF).
// The data slice is copied internally and can be reused after this call.
func NewFontSource(data []byte) (*FontSource, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}

	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	parsed, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font: %w", err)
	}

	// ParseTTF returns a *Face which embeds the thread-safe *Font.
	shapedFace, err := gotextfont.ParseTTF(bytes.NewReader(dataCopy))
	if err != nil {
		return nil, fmt.Errorf("text: failed to parse font for shaping: %w", err)
	}

	s := &FontSource{
		data:   dataCopy,
		sfnt:   parsed,
		shaped: shapedFace.Font,
	}
	s.name = s.extractName()
	return s, nil
}

// extractName returns the font family name, or empty if unavailable.
func (s *FontSource) extractName() string {
	if name, err := s.sfnt.Name(nil, sfnt.NameIDFamily); err == nil {
		return name
	}
	return ""
}

// Name returns the font family name.
func (s *FontSource) Name() string {
	return s.name
}

// Face creates a Face at the specified size in pixels.
// Multiple faces can be created from the same FontSource.
func (s *FontSource) Face(size float64) *Face {
	if s == nil {
		panic("text: Face called on nil FontSource")
	}
	return &Face{source: s, size: size}
}

var defaultSource = sync.OnceValue(func() *FontSource {
	s, err := NewFontSource(goregular.TTF)
	if err != nil {
		// goregular is embedded and known-good; failing to parse it
		// means the build itself is broken.
		panic("text: failed to parse embedded Go Regular font: " + err.Error())
	}
	return s
})

// Default returns the shared FontSource for the embedded Go Regular
// face. The source is parsed lazily on first use.
func Default() *FontSource {
	return defaultSource()
}
