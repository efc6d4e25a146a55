package main

import (
	"os"

	"github.com/telsuche/telsuche/cmd/telsuche/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
