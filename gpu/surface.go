// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import (
	"fmt"
	"log/slog"

	"github.com/cogentcore/webgpu/wgpu"

	"github.com/gogpu/tally"
)

// Surface manages the window's presentable textures: format selection,
// (re)configuration on resize, per-frame acquisition, and presentation.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	dev  *Device
	surf *wgpu.Surface

	format wgpu.TextureFormat
	alpha  wgpu.CompositeAlphaMode
	w, h   int

	configured bool

	// texture acquired for the frame in flight, released on Present.
	curTex  *wgpu.Texture
	curView *wgpu.TextureView
}

// NewSurface selects a texture format from the surface capabilities,
// preferring an sRGB swapchain format, and configures the surface at
// the given size in physical pixels.
func NewSurface(dev *Device, surf *wgpu.Surface, width, height int) (*Surface, error) {
	caps := surf.GetCapabilities(dev.Adapter())
	if len(caps.Formats) == 0 {
		return nil, ErrNoSurfaceFormat
	}

	s := &Surface{
		dev:    dev,
		surf:   surf,
		format: preferredFormat(caps.Formats),
		alpha:  wgpu.CompositeAlphaModeAuto,
	}
	if len(caps.AlphaModes) > 0 {
		s.alpha = caps.AlphaModes[0]
	}

	tally.Logger().Info("gpu: surface configured",
		slog.String("format", fmt.Sprintf("%v", s.format)),
		slog.Int("width", width),
		slog.Int("height", height),
	)
	s.Resize(width, height)
	return s, nil
}

// preferredFormat picks an sRGB format when the surface offers one,
// so the pipeline's color output matches what the compositor expects.
// Falls back to the surface's first (preferred) format.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if f == wgpu.TextureFormatBGRA8UnormSrgb || f == wgpu.TextureFormatRGBA8UnormSrgb {
			return f
		}
	}
	return formats[0]
}

// Format returns the configured swapchain texture format.
func (s *Surface) Format() wgpu.TextureFormat { return s.format }

// Size returns the configured size in physical pixels.
func (s *Surface) Size() (w, h int) { return s.w, s.h }

// Resize reconfigures the surface for a new framebuffer size. A zero
// or negative dimension (minimized window) leaves the surface
// unconfigured; Acquire reports ErrSurfaceUnconfigured until a
// nonzero resize arrives.
func (s *Surface) Resize(width, height int) {
	s.w, s.h = width, height
	if width <= 0 || height <= 0 {
		s.configured = false
		return
	}
	s.surf.Configure(s.dev.Adapter(), s.dev.WGPU(), &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      s.format,
		Width:       uint32(width),
		Height:      uint32(height),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   s.alpha,
	})
	s.configured = true
}

// Acquire returns the texture view to render the next frame into. On a
// transient acquisition failure (outdated swapchain after a resize) it
// reconfigures once and retries. The view stays valid until Present.
func (s *Surface) Acquire() (*wgpu.TextureView, error) {
	if !s.configured {
		return nil, ErrSurfaceUnconfigured
	}

	tex, err := s.surf.GetCurrentTexture()
	if err != nil {
		tally.Logger().Debug("gpu: surface texture lost, reconfiguring",
			slog.String("error", err.Error()))
		s.Resize(s.w, s.h)
		tex, err = s.surf.GetCurrentTexture()
		if err != nil {
			return nil, fmt.Errorf("gpu: failed to acquire surface texture: %w", err)
		}
	}

	view, err := tex.CreateView(nil)
	if err != nil {
		tex.Release()
		return nil, fmt.Errorf("gpu: failed to create surface view: %w", err)
	}
	s.curTex = tex
	s.curView = view
	return view, nil
}

// Present shows the frame rendered into the last acquired view and
// releases it.
func (s *Surface) Present() {
	s.surf.Present()
	s.releaseCurrent()
}

func (s *Surface) releaseCurrent() {
	if s.curView != nil {
		s.curView.Release()
		s.curView = nil
	}
	if s.curTex != nil {
		s.curTex.Release()
		s.curTex = nil
	}
}

// Close releases any in-flight texture and the surface itself.
// Close is idempotent.
func (s *Surface) Close() {
	s.releaseCurrent()
	if s.surf != nil {
		s.surf.Release()
		s.surf = nil
	}
	s.configured = false
}
