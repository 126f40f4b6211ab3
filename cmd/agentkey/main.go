package main

import (
	"os"

	"agentkey/cmd/agentkey/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
