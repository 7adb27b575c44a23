// Copyright (c) 2026 Affine Team
// Affine - affine cipher toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Affine.
//
// Usage:
//
//	go run . [flags]
//	./affine encrypt -a 5 -b 8 HELLO
//
// Without a subcommand the interactive workbench starts. See --help.
package main

import (
	"os"

	"github.com/payveri/affine/internal/logging"
	"github.com/payveri/affine/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
