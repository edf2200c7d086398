// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package tess converts a frame's draw commands into GPU-ready
// triangle meshes.
//
// Every command becomes textured, colored triangles sampling a single
// glyph atlas page: text quads sample their glyph masks, while plain
// and rounded rectangles sample the atlas's solid white region. One
// mesh, one texture, one pipeline per frame.
package tess
