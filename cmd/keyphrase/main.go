package main

import (
	"os"

	"keyphrase/cmd/keyphrase/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
