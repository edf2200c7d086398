// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package tess

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/tally/text"
	"github.com/gogpu/tally/ui"
)

// Tessellator flattens draw lists into meshes. It owns the glyph atlas
// used to resolve text commands and reuses one mesh across frames.
//
// Tessellator is NOT safe for concurrent use.
type Tessellator struct {
	atlas *text.Atlas
	mesh  Mesh

	// scratch outline for rounded rectangles
	pts []point
}

type point struct {
	x, y float32
}

// NewTessellator creates a tessellator rasterizing text through the
// given atlas.
func NewTessellator(atlas *text.Atlas) *Tessellator {
	return &Tessellator{atlas: atlas}
}

// Atlas returns the glyph atlas the tessellator draws from.
func (t *Tessellator) Atlas() *text.Atlas { return t.atlas }

// Tessellate converts the list into a mesh. The returned mesh is owned
// by the tessellator and valid until the next call.
func (t *Tessellator) Tessellate(list *ui.DrawList) *Mesh {
	t.mesh.Reset()
	for _, cmd := range list.Commands() {
		switch cmd.Kind {
		case ui.KindRect:
			t.rect(cmd.Rect, cmd.Color)
		case ui.KindRoundedRect:
			t.roundedRect(cmd.Rect, cmd.Radius, cmd.Color)
		case ui.KindText:
			t.text(cmd.Text, cmd.X, cmd.Y, cmd.Color)
		}
	}
	return &t.mesh
}

// quad appends two triangles covering [x0,y0]..[x1,y1] with the given
// texture region.
func (t *Tessellator) quad(x0, y0, x1, y1, u0, v0, u1, v1 float32, c ui.RGBA) {
	base := uint32(len(t.mesh.Vertices))
	t.mesh.Vertices = append(t.mesh.Vertices,
		Vertex{X: x0, Y: y0, U: u0, V: v0, R: c.R, G: c.G, B: c.B, A: c.A},
		Vertex{X: x1, Y: y0, U: u1, V: v0, R: c.R, G: c.G, B: c.B, A: c.A},
		Vertex{X: x1, Y: y1, U: u1, V: v1, R: c.R, G: c.G, B: c.B, A: c.A},
		Vertex{X: x0, Y: y1, U: u0, V: v1, R: c.R, G: c.G, B: c.B, A: c.A},
	)
	t.mesh.Indices = append(t.mesh.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

func (t *Tessellator) rect(r ui.Rect, c ui.RGBA) {
	u, v := t.atlas.WhiteUV()
	t.quad(r.MinX, r.MinY, r.MaxX, r.MaxY, u, v, u, v, c)
}

// cornerSegments picks the arc flattening for a corner radius. Small
// radii need few segments to stay visually smooth.
func cornerSegments(radius float32) int {
	n := int(math32.Ceil(radius / 2))
	if n < 3 {
		n = 3
	}
	if n > 16 {
		n = 16
	}
	return n
}

// roundedRect builds a convex outline from four flattened corner arcs
// and fans it from its center.
func (t *Tessellator) roundedRect(r ui.Rect, radius float32, c ui.RGBA) {
	segs := cornerSegments(radius)
	t.pts = t.pts[:0]

	// Corner centers, walked clockwise from the top-left. Each arc
	// sweeps a quarter turn starting at the angle where the previous
	// edge ends.
	corners := [4]struct {
		cx, cy, start float32
	}{
		{r.MinX + radius, r.MinY + radius, math32.Pi},         // top-left
		{r.MaxX - radius, r.MinY + radius, 1.5 * math32.Pi},   // top-right
		{r.MaxX - radius, r.MaxY - radius, 0},                 // bottom-right
		{r.MinX + radius, r.MaxY - radius, 0.5 * math32.Pi},   // bottom-left
	}
	for _, corner := range corners {
		for i := 0; i <= segs; i++ {
			a := corner.start + 0.5*math32.Pi*float32(i)/float32(segs)
			t.pts = append(t.pts, point{
				x: corner.cx + radius*math32.Cos(a),
				y: corner.cy + radius*math32.Sin(a),
			})
		}
	}

	u, v := t.atlas.WhiteUV()
	base := uint32(len(t.mesh.Vertices))

	cx := (r.MinX + r.MaxX) / 2
	cy := (r.MinY + r.MaxY) / 2
	t.mesh.Vertices = append(t.mesh.Vertices,
		Vertex{X: cx, Y: cy, U: u, V: v, R: c.R, G: c.G, B: c.B, A: c.A})
	for _, p := range t.pts {
		t.mesh.Vertices = append(t.mesh.Vertices,
			Vertex{X: p.x, Y: p.y, U: u, V: v, R: c.R, G: c.G, B: c.B, A: c.A})
	}

	n := uint32(len(t.pts))
	for i := uint32(0); i < n; i++ {
		t.mesh.Indices = append(t.mesh.Indices,
			base, base+1+i, base+1+(i+1)%n)
	}
}

// text shapes s and emits one quad per visible glyph, pen starting at
// the baseline-left origin (x, y).
func (t *Tessellator) text(s string, x, y float32, c ui.RGBA) {
	glyphs := t.atlas.Face().Shape(s)
	for _, g := range glyphs {
		ag, ok := t.atlas.Glyph(g.Rune)
		if !ok || ag.W == 0 || ag.H == 0 {
			continue
		}
		gx := x + float32(g.X) + ag.OffsetX
		gy := y + float32(g.Y) + ag.OffsetY
		t.quad(gx, gy, gx+ag.W, gy+ag.H, ag.U0, ag.V0, ag.U1, ag.V1, c)
	}
}
