package ui

import (
	"strings"
	"testing"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/text"
)

func testFace(t *testing.T) *text.Face {
	t.Helper()
	return text.Default().Face(18)
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 20)

	tests := []struct {
		name string
		x, y float32
		want bool
	}{
		{"center", 20, 20, true},
		{"min corner inclusive", 10, 10, true},
		{"max corner exclusive", 30, 30, false},
		{"left of rect", 5, 20, false},
		{"below rect", 20, 35, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestDrawListRoundedRadius(t *testing.T) {
	var l DrawList

	// Non-positive radius degrades to a plain rectangle.
	l.FillRoundedRect(NewRect(0, 0, 10, 10), 0, RGB(1, 1, 1))
	if l.Commands()[0].Kind != KindRect {
		t.Error("zero radius should produce KindRect")
	}

	// Oversized radius is clamped to half the short side.
	l.FillRoundedRect(NewRect(0, 0, 10, 40), 100, RGB(1, 1, 1))
	cmd := l.Commands()[1]
	if cmd.Kind != KindRoundedRect {
		t.Fatalf("Kind = %v, want KindRoundedRect", cmd.Kind)
	}
	if cmd.Radius != 5 {
		t.Errorf("Radius = %v, want clamped to 5", cmd.Radius)
	}
}

func TestDrawListSkipsEmpty(t *testing.T) {
	var l DrawList
	l.FillRect(NewRect(0, 0, 0, 10), RGB(1, 1, 1))
	l.Text("", 0, 0, RGB(1, 1, 1))
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0 for degenerate commands", l.Len())
	}
}

func TestInputEndFrame(t *testing.T) {
	in := Input{X: 5, Y: 6, Down: true, Released: true, PressX: 5, PressY: 6}
	in.EndFrame()
	if in.Released {
		t.Error("EndFrame should clear Released")
	}
	if !in.Down || in.X != 5 || in.Y != 6 || in.PressX != 5 || in.PressY != 6 {
		t.Error("EndFrame should preserve position, press origin, and Down state")
	}
}

func TestButtonActivation(t *testing.T) {
	face := testFace(t)
	r := NewRect(100, 100, 80, 30)

	tests := []struct {
		name string
		in   Input
		want bool
	}{
		{
			"press and release inside",
			Input{X: 120, Y: 110, Released: true, PressX: 130, PressY: 115},
			true,
		},
		{
			"press began outside",
			Input{X: 120, Y: 110, Released: true, PressX: 10, PressY: 10},
			false,
		},
		{
			"released outside",
			Input{X: 300, Y: 300, Released: true, PressX: 120, PressY: 110},
			false,
		},
		{
			"still held",
			Input{X: 120, Y: 110, Down: true, PressX: 120, PressY: 110},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFrame(tt.in, 800, 600, DefaultTheme(), face)
			if got := f.Button("ok", r); got != tt.want {
				t.Errorf("Button() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestButtonHoverState(t *testing.T) {
	face := testFace(t)
	theme := DefaultTheme()
	r := NewRect(100, 100, 80, 30)

	f := NewFrame(Input{X: 120, Y: 110}, 800, 600, theme, face)
	f.Button("ok", r)
	if got := f.List().Commands()[0].Color; got != theme.ButtonHover {
		t.Errorf("hovered fill = %v, want ButtonHover %v", got, theme.ButtonHover)
	}

	f = NewFrame(Input{X: 10, Y: 10}, 800, 600, theme, face)
	f.Button("ok", r)
	if got := f.List().Commands()[0].Color; got != theme.Button {
		t.Errorf("idle fill = %v, want Button %v", got, theme.Button)
	}
}

// clickAt returns the input for a completed click at (x, y).
func clickAt(x, y float32) Input {
	return Input{X: x, Y: y, Released: true, PressX: x, PressY: y}
}

func findText(l *DrawList, s string) bool {
	for _, cmd := range l.Commands() {
		if cmd.Kind == KindText && strings.Contains(cmd.Text, s) {
			return true
		}
	}
	return false
}

func TestBuildCounterSameFrameFeedback(t *testing.T) {
	face := testFace(t)
	c := tally.NewCounter()

	// Click the +1 button: the activating frame already shows the
	// incremented value.
	probe := NewFrame(Input{}, 800, 600, DefaultTheme(), face)
	lay := layoutCounter(probe)
	cx := lay.plus.MinX + lay.plus.W()/2
	cy := lay.plus.MinY + lay.plus.H()/2

	f := NewFrame(clickAt(cx, cy), 800, 600, DefaultTheme(), face)
	list := BuildCounter(f, c)

	if got := c.Value(); got != 1 {
		t.Fatalf("counter after click = %d, want 1", got)
	}
	if !findText(list, "Count: 1") {
		t.Error("activating frame should already show Count: 1")
	}
	if findText(list, "Count: 0") {
		t.Error("activating frame should not show the stale value")
	}
}

func TestBuildCounterDecrementUnclamped(t *testing.T) {
	face := testFace(t)
	c := tally.NewCounter()

	probe := NewFrame(Input{}, 800, 600, DefaultTheme(), face)
	lay := layoutCounter(probe)
	cx := lay.minus.MinX + lay.minus.W()/2
	cy := lay.minus.MinY + lay.minus.H()/2

	list := BuildCounter(NewFrame(clickAt(cx, cy), 800, 600, DefaultTheme(), face), c)
	if got := c.Value(); got != -1 {
		t.Fatalf("counter after decrement from 0 = %d, want -1", got)
	}
	if !findText(list, "Count: -1") {
		t.Error("frame should show Count: -1")
	}
}

func TestBuildCounterReset(t *testing.T) {
	face := testFace(t)
	c := tally.NewCounter()
	c.Increment()
	c.Increment()

	probe := NewFrame(Input{}, 800, 600, DefaultTheme(), face)
	lay := layoutCounter(probe)
	cx := lay.reset.MinX + lay.reset.W()/2
	cy := lay.reset.MinY + lay.reset.H()/2

	list := BuildCounter(NewFrame(clickAt(cx, cy), 800, 600, DefaultTheme(), face), c)
	if got := c.Value(); got != 0 {
		t.Fatalf("counter after reset = %d, want 0", got)
	}
	if !findText(list, "Count: 0") {
		t.Error("frame should show Count: 0")
	}
}

func TestBuildCounterCommandOrder(t *testing.T) {
	face := testFace(t)
	f := NewFrame(Input{}, 800, 600, DefaultTheme(), face)
	list := BuildCounter(f, tally.NewCounter())

	cmds := list.Commands()
	if len(cmds) == 0 {
		t.Fatal("BuildCounter produced no commands")
	}

	bg := cmds[0]
	if bg.Kind != KindRect || bg.Rect.W() != 800 || bg.Rect.H() != 600 {
		t.Error("first command should be the viewport background")
	}
	last := cmds[len(cmds)-1]
	if last.Kind != KindText || !strings.Contains(last.Text, "Count:") {
		t.Error("last command should be the value label")
	}
}

func TestLayoutAdaptsToViewport(t *testing.T) {
	face := testFace(t)
	theme := DefaultTheme()

	small := layoutCounter(NewFrame(Input{}, 400, 300, theme, face))
	large := layoutCounter(NewFrame(Input{}, 1600, 900, theme, face))

	if small.plus == large.plus {
		t.Error("layout should move with the viewport size")
	}

	// The button row stays horizontally centered.
	for _, lay := range []counterLayout{small, large} {
		if lay.minus.MinX <= 0 {
			t.Errorf("row overflows the viewport: left edge %v", lay.minus.MinX)
		}
	}
	lm := small.minus.MinX
	rm := 400 - small.reset.MaxX
	if diff := lm - rm; diff > 0.5 || diff < -0.5 {
		t.Errorf("row not centered: left margin %v, right margin %v", lm, rm)
	}
}

func TestThemeScaled(t *testing.T) {
	base := DefaultTheme()
	scaled := base.Scaled(2)

	if scaled.FontSize != base.FontSize*2 {
		t.Errorf("FontSize = %v, want %v", scaled.FontSize, base.FontSize*2)
	}
	if scaled.Background != base.Background {
		t.Error("Scaled should not change colors")
	}

	// Non-positive factors fall back to 1.
	if got := base.Scaled(0); got != base {
		t.Error("Scaled(0) should return the theme unchanged")
	}
}
