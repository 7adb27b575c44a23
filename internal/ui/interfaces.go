// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui holds presentation helpers shared by the CLI, the workbench
// TUI and the HTTP API: key resolution, localized error messages and the
// clipboard abstraction.
package ui

import (
	"sync"

	"github.com/atotto/clipboard"
)

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) WriteAll(text string) error { return clipboard.WriteAll(text) }

var (
	clipMu      sync.RWMutex
	defaultClip Clipboard = systemClipboard{}
)

// DefaultClipboard returns the clipboard used when none is injected.
func DefaultClipboard() Clipboard {
	clipMu.RLock()
	defer clipMu.RUnlock()
	return defaultClip
}

// SetDefaultClipboard replaces the default clipboard. Passing nil restores
// the system clipboard.
func SetDefaultClipboard(c Clipboard) {
	clipMu.Lock()
	defer clipMu.Unlock()
	if c == nil {
		c = systemClipboard{}
	}
	defaultClip = c
}
