// Package main is the entry point for the registry CLI.
package main

import (
	"os"
)

// Build information injected via ldflags at build time.
var version = "dev"

func main() {
	os.Exit(exitCode(execute(os.Args[1:], os.Stdout, os.Stderr)))
}
