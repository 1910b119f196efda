// Command companion manages the local companion store from the terminal.
package main

import (
	"os"

	"github.com/mesh-intelligence/companion/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
