package main

import (
	"os"

	"promptcalc/cmd/promptcalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
