// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface using Cobra. It wires
// configuration, logging and localization, then delegates to the stateless
// cipher in core/affine, the workbench TUI or the HTTP API.
package cli
