package main

import (
	"os"

	"calc/internal/cli"
)

// main is a deterministic boundary: argv is canonicalized into an
// Invocation before any arithmetic is performed.
func main() {
	os.Exit(cli.Main(os.Args[1:], os.Stdout, os.Stderr))
}
