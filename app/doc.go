// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package app owns the desktop window and the event loop.
//
// It creates a GLFW window without a client API, attaches a WebGPU
// surface to it, and runs an event-driven frame loop: the loop blocks
// until the OS delivers input or a resize, rebuilds the counter UI,
// tessellates it, and presents the frame. Nothing is drawn while the
// application is idle.
package app
