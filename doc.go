// Package tally is a small windowed counter demo for the GoGPU ecosystem.
//
// # Overview
//
// tally shows the full path from an OS event loop to pixels on screen:
// window events feed an immediate-mode UI that is rebuilt every frame,
// tessellated into a triangle mesh, and presented through WebGPU.
// The application state is deliberately tiny, one signed counter with
// increment, decrement, and reset, so the plumbing stays legible.
//
// # Quick Start
//
//	go run github.com/gogpu/tally/cmd/tally
//
// Set TALLY_LOG=debug for verbose diagnostics (quiet by default).
//
// # Architecture
//
// The repository is organized into:
//   - Root: Counter state and package logging
//   - ui: immediate-mode frame builder producing a draw-command list
//   - text: font parsing, shaping, and the glyph atlas
//   - tess: draw commands to GPU triangle mesh
//   - gpu: WebGPU device, surface, and the UI render pipeline
//   - app: glfw window and the event-driven control loop
package tally
