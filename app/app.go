// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package app

import (
	"errors"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/tally"
	"github.com/gogpu/tally/gpu"
	"github.com/gogpu/tally/tess"
	"github.com/gogpu/tally/text"
	"github.com/gogpu/tally/ui"
)

func init() {
	// GLFW and wgpu surfaces must stay on the main thread.
	runtime.LockOSThread()
}

// App is the desktop counter application. Construct it with New and
// drive it with Run from the main goroutine.
type App struct {
	title         string
	width, height int
	theme         ui.Theme

	counter *tally.Counter

	window *glfw.Window
	scale  float32
	input  ui.Input
}

// New creates an App with the given options applied over the defaults.
func New(opts ...Option) *App {
	a := &App{
		title:   DefaultTitle,
		width:   DefaultWidth,
		height:  DefaultHeight,
		theme:   ui.DefaultTheme(),
		counter: tally.NewCounter(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Counter returns the application's counter state.
func (a *App) Counter() *tally.Counter { return a.counter }

// Run opens the window, initializes the GPU, and blocks in the event
// loop until the window is closed. It must be called from the main
// goroutine. The window and GPU resources are torn down before Run
// returns; a non-nil error means the application failed, not that the
// user quit.
func (a *App) Run() error {
	log := tally.Logger()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("app: glfw init failed: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(a.width, a.height, a.title, nil, nil)
	if err != nil {
		return fmt.Errorf("app: window creation failed: %w", err)
	}
	defer window.Destroy()
	a.window = window

	scaleX, _ := window.GetContentScale()
	a.scale = scaleX
	if a.scale <= 0 {
		a.scale = 1
	}
	log.Info("app: window created",
		slog.String("title", a.title),
		slog.Int("width", a.width),
		slog.Int("height", a.height),
		slog.Float64("scale", float64(a.scale)),
	)

	instance := wgpu.CreateInstance(nil)
	defer instance.Release()

	wsurf := instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))

	dev, err := gpu.NewDevice(instance, wsurf)
	if err != nil {
		return err
	}
	defer dev.Close()

	fbw, fbh := window.GetFramebufferSize()
	surf, err := gpu.NewSurface(dev, wsurf, fbw, fbh)
	if err != nil {
		return err
	}
	defer surf.Close()

	theme := a.theme.Scaled(a.scale)
	face := text.Default().Face(float64(theme.FontSize))
	atlas, err := text.NewAtlas(face)
	if err != nil {
		return err
	}
	defer atlas.Close()

	tessellator := tess.NewTessellator(atlas)
	renderer, err := gpu.NewRenderer(dev, surf, atlas)
	if err != nil {
		return err
	}
	defer renderer.Close()

	a.installCallbacks(surf)

	// First frame before any event arrives.
	if err := a.frame(surf, tessellator, renderer, theme, face); err != nil {
		return err
	}

	for !window.ShouldClose() {
		glfw.WaitEvents()
		if window.ShouldClose() {
			break
		}
		if err := a.frame(surf, tessellator, renderer, theme, face); err != nil {
			return err
		}
		a.input.EndFrame()
	}
	log.Info("app: window closed")
	return nil
}

// installCallbacks wires GLFW events into the input state and surface.
// Cursor positions arrive in logical screen coordinates and are scaled
// to the physical pixels the UI is laid out in.
func (a *App) installCallbacks(surf *gpu.Surface) {
	a.window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) {
		surf.Resize(w, h)
	})
	a.window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		a.input.X = float32(x) * a.scale
		a.input.Y = float32(y) * a.scale
	})
	a.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		if button != glfw.MouseButtonLeft {
			return
		}
		switch action {
		case glfw.Press:
			a.input.Down = true
			a.input.PressX = a.input.X
			a.input.PressY = a.input.Y
		case glfw.Release:
			a.input.Down = false
			a.input.Released = true
		}
	})
}

// frame rebuilds the UI from current state and presents it. A frame
// against an unconfigured surface (minimized window) is skipped.
func (a *App) frame(surf *gpu.Surface, tessellator *tess.Tessellator, renderer *gpu.Renderer, theme ui.Theme, face *text.Face) error {
	w, h := surf.Size()
	f := ui.NewFrame(a.input, float32(w), float32(h), theme, face)
	list := ui.BuildCounter(f, a.counter)
	mesh := tessellator.Tessellate(list)

	err := renderer.Render(mesh, theme.Background)
	if errors.Is(err, gpu.ErrSurfaceUnconfigured) {
		return nil
	}
	if err != nil {
		return err
	}

	tally.Logger().Debug("app: frame presented",
		slog.Int("commands", list.Len()),
		slog.Int("vertices", len(mesh.Vertices)),
		slog.Int64("count", a.counter.Value()),
	)
	return nil
}
