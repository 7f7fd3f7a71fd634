package main

import (
	"os"

	"github.com/spenso-dev/spenso/internal/commands"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
