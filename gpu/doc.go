// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpu presents tessellated UI meshes through WebGPU.
//
// The package wraps wgpu-native via github.com/cogentcore/webgpu: device
// acquisition, window surface configuration, and a single textured
// triangle pipeline that draws one mesh per frame over a cleared
// background.
//
// All types in this package must be used from the thread that owns the
// window, per wgpu-native and GLFW requirements.
package gpu
