// Package main provides the Breakline CLI.
package main

import (
	"os"

	"github.com/viewportlabs/breakline/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
