package main

import (
	"os"

	"github.com/cfopsum-dev/cfopsum/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
