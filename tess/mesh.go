// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

// Vertex is one mesh vertex in the layout the render pipeline expects:
// position in physical pixels, normalized atlas coordinates, and
// straight-alpha color.
type Vertex struct {
	X, Y       float32
	U, V       float32
	R, G, B, A float32
}

// Mesh is an indexed triangle list. It is rebuilt every frame; Reset
// keeps the backing arrays so steady-state frames allocate nothing.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// Reset empties the mesh, retaining capacity.
func (m *Mesh) Reset() {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
}

// IsEmpty reports whether the mesh has nothing to draw.
func (m *Mesh) IsEmpty() bool { return len(m.Indices) == 0 }
