package tess

import (
	"testing"

	"github.com/gogpu/tally/text"
	"github.com/gogpu/tally/ui"
)

func testTessellator(t *testing.T) *Tessellator {
	t.Helper()
	atlas, err := text.NewAtlas(text.Default().Face(18))
	if err != nil {
		t.Fatalf("NewAtlas: %v", err)
	}
	t.Cleanup(func() { atlas.Close() })
	return NewTessellator(atlas)
}

// checkIndices fails if any index is out of range or any triangle is
// degenerate.
func checkIndices(t *testing.T, m *Mesh) {
	t.Helper()
	if len(m.Indices)%3 != 0 {
		t.Fatalf("index count %d is not a multiple of 3", len(m.Indices))
	}
	n := uint32(len(m.Vertices))
	for i := 0; i < len(m.Indices); i += 3 {
		a, b, c := m.Indices[i], m.Indices[i+1], m.Indices[i+2]
		if a >= n || b >= n || c >= n {
			t.Fatalf("triangle %d references vertex out of range", i/3)
		}
		if a == b || b == c || a == c {
			t.Errorf("triangle %d is degenerate: %d %d %d", i/3, a, b, c)
		}
	}
}

func TestTessellateRect(t *testing.T) {
	ts := testTessellator(t)

	var list ui.DrawList
	list.FillRect(ui.NewRect(10, 20, 30, 40), ui.RGB(1, 0, 0))

	m := ts.Tessellate(&list)
	if len(m.Vertices) != 4 || len(m.Indices) != 6 {
		t.Fatalf("rect mesh: %d vertices, %d indices, want 4 and 6",
			len(m.Vertices), len(m.Indices))
	}
	checkIndices(t, m)

	wu, wv := ts.Atlas().WhiteUV()
	for i, v := range m.Vertices {
		if v.U != wu || v.V != wv {
			t.Errorf("vertex %d UV = (%v, %v), want white (%v, %v)", i, v.U, v.V, wu, wv)
		}
		if v.R != 1 || v.G != 0 || v.B != 0 || v.A != 1 {
			t.Errorf("vertex %d color = (%v, %v, %v, %v), want opaque red",
				i, v.R, v.G, v.B, v.A)
		}
	}

	v := m.Vertices
	if v[0].X != 10 || v[0].Y != 20 || v[2].X != 40 || v[2].Y != 60 {
		t.Errorf("rect corners misplaced: (%v,%v) .. (%v,%v)",
			v[0].X, v[0].Y, v[2].X, v[2].Y)
	}
}

func TestTessellateRoundedRect(t *testing.T) {
	ts := testTessellator(t)

	r := ui.NewRect(0, 0, 100, 50)
	var list ui.DrawList
	list.FillRoundedRect(r, 8, ui.RGB(0, 1, 0))

	m := ts.Tessellate(&list)
	if m.IsEmpty() {
		t.Fatal("rounded rect produced no triangles")
	}
	checkIndices(t, m)

	// The fan covers the center and stays inside the bounds.
	wu, wv := ts.Atlas().WhiteUV()
	for i, v := range m.Vertices {
		if v.U != wu || v.V != wv {
			t.Errorf("vertex %d should sample white UV", i)
		}
		const eps = 0.01
		if v.X < r.MinX-eps || v.X > r.MaxX+eps || v.Y < r.MinY-eps || v.Y > r.MaxY+eps {
			t.Errorf("vertex %d (%v, %v) escapes bounds", i, v.X, v.Y)
		}
	}
}

func TestCornerSegments(t *testing.T) {
	if got := cornerSegments(1); got != 3 {
		t.Errorf("cornerSegments(1) = %d, want floor of 3", got)
	}
	if got := cornerSegments(200); got != 16 {
		t.Errorf("cornerSegments(200) = %d, want cap of 16", got)
	}
	if got := cornerSegments(12); got != 6 {
		t.Errorf("cornerSegments(12) = %d, want 6", got)
	}
}

func TestTessellateText(t *testing.T) {
	ts := testTessellator(t)

	var list ui.DrawList
	list.Text("+1", 50, 100, ui.RGB(1, 1, 1))

	m := ts.Tessellate(&list)
	// Two visible glyphs, one quad each.
	if len(m.Vertices) != 8 || len(m.Indices) != 12 {
		t.Fatalf("text mesh: %d vertices, %d indices, want 8 and 12",
			len(m.Vertices), len(m.Indices))
	}
	checkIndices(t, m)

	// Glyph quads sample their masks, not the white block.
	wu, wv := ts.Atlas().WhiteUV()
	for i, v := range m.Vertices {
		if v.U == wu && v.V == wv {
			t.Errorf("vertex %d samples the white block", i)
		}
	}

	// Quads sit near the pen origin, above and below the baseline.
	for i, v := range m.Vertices {
		if v.X < 40 || v.X > 120 || v.Y < 60 || v.Y > 120 {
			t.Errorf("vertex %d (%v, %v) far from pen origin", i, v.X, v.Y)
		}
	}
}

func TestTessellateSkipsWhitespace(t *testing.T) {
	ts := testTessellator(t)

	var spaced, solid ui.DrawList
	spaced.Text("a b", 0, 50, ui.RGB(1, 1, 1))
	solid.Text("ab", 0, 50, ui.RGB(1, 1, 1))

	nm := len(ts.Tessellate(&spaced).Vertices)
	ns := len(ts.Tessellate(&solid).Vertices)
	if nm != ns {
		t.Errorf("space produced geometry: %d vertices vs %d", nm, ns)
	}
}

func TestTessellateReusesMesh(t *testing.T) {
	ts := testTessellator(t)

	var list ui.DrawList
	list.FillRect(ui.NewRect(0, 0, 10, 10), ui.RGB(1, 1, 1))

	m1 := ts.Tessellate(&list)
	n := len(m1.Vertices)
	m2 := ts.Tessellate(&list)
	if m1 != m2 {
		t.Error("Tessellate should return the same mesh across frames")
	}
	if len(m2.Vertices) != n {
		t.Errorf("second frame has %d vertices, want %d", len(m2.Vertices), n)
	}
}

func TestTessellateEmptyList(t *testing.T) {
	ts := testTessellator(t)
	var list ui.DrawList
	if m := ts.Tessellate(&list); !m.IsEmpty() {
		t.Error("empty list should produce an empty mesh")
	}
}
