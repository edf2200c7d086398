// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package text

import (
	"fmt"
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// atlasPage is the atlas texture dimension. One 512x512 page holds far
// more than the handful of glyphs the counter UI ever draws.
const atlasPage = 512

// whiteBlock is the side length of the solid white region reserved at
// the atlas origin. Untextured geometry samples its center, so filled
// rectangles and glyph quads share one pipeline and one texture.
const whiteBlock = 4

// AtlasGlyph describes where a rasterized glyph lives in the atlas and
// how to place its quad relative to the pen position.
type AtlasGlyph struct {
	// U0, V0, U1, V1 are normalized texture coordinates of the mask.
	U0, V0, U1, V1 float32

	// OffsetX, OffsetY position the quad's top-left corner relative to
	// the pen (baseline) position, in pixels. OffsetY is negative for
	// glyphs that rise above the baseline.
	OffsetX, OffsetY float32

	// W, H are the mask dimensions in pixels.
	W, H float32
}

// Atlas rasterizes glyphs on demand into a single RGBA page for GPU
// sampling. Glyph masks are stored as white pixels with coverage in
// alpha, so vertex color tints them in the shader.
//
// Atlas is NOT safe for concurrent use: the underlying opentype face
// and the packing cursor are mutable. The demo uses it from the UI
// thread only.
type Atlas struct {
	face   *Face
	otFace font.Face
	img    *image.RGBA
	glyphs map[rune]AtlasGlyph

	// shelf packing cursor
	cursorX, cursorY, rowH int

	dirty bool
}

// NewAtlas creates an empty atlas for the given face, with the white
// block pre-filled.
func NewAtlas(face *Face) (*Atlas, error) {
	otFace, err := opentype.NewFace(face.source.sfnt, &opentype.FaceOptions{
		Size:    face.size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("text: failed to create rasterizer face: %w", err)
	}

	a := &Atlas{
		face:    face,
		otFace:  otFace,
		img:     image.NewRGBA(image.Rect(0, 0, atlasPage, atlasPage)),
		glyphs:  make(map[rune]AtlasGlyph),
		cursorX: whiteBlock + 1,
		rowH:    whiteBlock,
		dirty:   true,
	}

	// The page is transparent white: rgb stays 0xFF everywhere and
	// only alpha varies. Linear sampling across a glyph edge then
	// interpolates coverage alone instead of blending rgb toward
	// black.
	pix := a.img.Pix
	for i := range pix {
		pix[i] = 0xFF
	}
	for i := 3; i < len(pix); i += 4 {
		pix[i] = 0
	}
	for y := 0; y < whiteBlock; y++ {
		for x := 0; x < whiteBlock; x++ {
			pix[a.img.PixOffset(x, y)+3] = 0xFF
		}
	}
	return a, nil
}

// Face returns the face this atlas rasterizes for.
func (a *Atlas) Face() *Face { return a.face }

// WhiteUV returns the texture coordinates of the solid white region's
// center, for untextured vertices.
func (a *Atlas) WhiteUV() (u, v float32) {
	c := float32(whiteBlock) / 2 / atlasPage
	return c, c
}

// Glyph returns atlas placement for the given rune, rasterizing and
// packing it on first use. The second return is false if the glyph
// could not be rasterized or no longer fits in the page.
func (a *Atlas) Glyph(r rune) (AtlasGlyph, bool) {
	if g, ok := a.glyphs[r]; ok {
		return g, ok
	}
	g, err := a.pack(r)
	if err != nil {
		return AtlasGlyph{}, false
	}
	a.glyphs[r] = g
	return g, true
}

// pack rasterizes one glyph and copies its mask into the page.
func (a *Atlas) pack(r rune) (AtlasGlyph, error) {
	dr, mask, maskp, _, ok := a.otFace.Glyph(fixed.Point26_6{}, r)
	if !ok {
		return AtlasGlyph{}, fmt.Errorf("text: no glyph for %q", r)
	}

	w, h := dr.Dx(), dr.Dy()
	if w == 0 || h == 0 {
		// Whitespace: no mask, quad is empty, advance handled by shaping.
		return AtlasGlyph{}, nil
	}

	const pad = 1
	if a.cursorX+w+pad > atlasPage {
		a.cursorX = 0
		a.cursorY += a.rowH + pad
		a.rowH = 0
	}
	if a.cursorY+h+pad > atlasPage {
		return AtlasGlyph{}, ErrAtlasFull
	}

	// Copy mask coverage into the alpha channel; rgb stays white.
	dst := image.Rect(a.cursorX, a.cursorY, a.cursorX+w, a.cursorY+h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			_, _, _, ma := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			a.img.Pix[a.img.PixOffset(dst.Min.X+x, dst.Min.Y+y)+3] = uint8(ma >> 8)
		}
	}

	g := AtlasGlyph{
		U0:      float32(dst.Min.X) / atlasPage,
		V0:      float32(dst.Min.Y) / atlasPage,
		U1:      float32(dst.Max.X) / atlasPage,
		V1:      float32(dst.Max.Y) / atlasPage,
		OffsetX: float32(dr.Min.X),
		OffsetY: float32(dr.Min.Y),
		W:       float32(w),
		H:       float32(h),
	}

	a.cursorX += w + pad
	if h > a.rowH {
		a.rowH = h
	}
	a.dirty = true
	return g, nil
}

// Image returns the atlas page. The returned image is owned by the
// atlas and must not be modified.
func (a *Atlas) Image() *image.RGBA { return a.img }

// TakeDirty reports whether the page changed since the last call and
// clears the flag. The renderer uses this to re-upload the texture
// only when new glyphs were packed.
func (a *Atlas) TakeDirty() bool {
	d := a.dirty
	a.dirty = false
	return d
}

// Close releases the rasterizer face.
func (a *Atlas) Close() error {
	if a.otFace == nil {
		return nil
	}
	err := a.otFace.Close()
	a.otFace = nil
	return err
}
