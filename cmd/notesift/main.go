// Command notesift exports plain text from Apple Notes to JSON.
package main

import (
	"os"

	"github.com/lanternsoft/notesift-cli/internal/adapters/driving/cli"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.Execute(version); err != nil {
		os.Exit(1)
	}
}
