package main

import (
	"os"

	"github.com/idilsaglam/foodhub/internal/cli"
)

func main() {
	// Hand everything after the program name to the command tree.
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
