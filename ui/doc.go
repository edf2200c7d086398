// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ui is a tiny immediate-mode UI builder. Each frame the
// complete interface is redeclared from current state into a fresh
// draw-command list; there is no retained widget tree. Widget
// interaction (hover, press, activation) is derived from the frame's
// pointer input at declaration time, so a button click and the state
// change it causes land in the same frame.
package ui
