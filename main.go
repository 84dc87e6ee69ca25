// Copyright (c) 2025 ToeiRei
// Passgate - password strength validation toolkit
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for passgate.
//
// Usage:
//
//	go run . [flags]
//	./passgate [flags]
//
// This launches the passgate CLI. See --help for options.
package main

import (
	"log"
	"os"

	"github.com/toeirei/passgate/ui/cli"
)

// main is the entrypoint for the passgate CLI.
func main() {
	if err := cli.Execute(); err != nil {
		log.Printf("passgate CLI error: %v", err)
		os.Exit(1)
	}
}
