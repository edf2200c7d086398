// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpu

import "errors"

var (
	// ErrNoAdapter is returned when no GPU adapter compatible with the
	// window surface is available.
	ErrNoAdapter = errors.New("gpu: no compatible GPU adapter available")

	// ErrNoSurfaceFormat is returned when the surface reports no usable
	// texture formats.
	ErrNoSurfaceFormat = errors.New("gpu: surface reports no texture formats")

	// ErrSurfaceUnconfigured is returned when a frame is requested while
	// the surface has no valid configuration, typically because the
	// window is minimized to zero size. The condition is transient: the
	// caller should skip the frame and retry after the next resize.
	ErrSurfaceUnconfigured = errors.New("gpu: surface not configured")

	// ErrClosed is returned when an operation is attempted after Close.
	ErrClosed = errors.New("gpu: device closed")
)
