// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive terminal workbench: a form with the
// text to transform, the key inputs, action buttons, the result and a
// status line.
package tui // import "github.com/payveri/affine/internal/tui"

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/payveri/affine/internal/logging"
)

// Run starts the workbench and blocks until the user quits.
func Run(opts Options) error {
	logging.Debugf("starting workbench with key %s (strict b: %v)", opts.Key, opts.StrictB)
	p := tea.NewProgram(newWorkbench(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
