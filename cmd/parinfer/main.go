package main

import (
	"os"

	"github.com/parinfer-go/parinfer/cmd/parinfer/cmd"

	// Registers the diff collaborator parinfer.Process uses when a caller
	// supplies Options.PrevText instead of an explicit Changes list.
	_ "github.com/parinfer-go/parinfer/parinfer/diff"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
