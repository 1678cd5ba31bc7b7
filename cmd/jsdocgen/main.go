// Package main provides the jsdocgen CLI.
package main

import (
	"os"

	"github.com/jsdocgen/jsdocgen/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
