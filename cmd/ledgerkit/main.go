package main

import (
	"os"

	"github.com/ledgerkit-dev/ledgerkit/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
