package main

import (
	"os"
)

func main() {
	command := NewAssimpExportCommand()
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
