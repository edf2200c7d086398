// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package text provides the minimal text stack for the tally UI:
// font parsing, HarfBuzz shaping, string measurement, and a glyph
// atlas that rasterizes glyphs on demand for GPU sampling.
//
// Font parsing uses golang.org/x/image/font/opentype; shaping uses
// go-text/typesetting. The embedded Go Regular face is the default
// UI font, so the binary needs no font files at runtime.
package text
