// Package main provides the bases command.
package main

import (
	"os"

	"github.com/capitalone/bases/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
