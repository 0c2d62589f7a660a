package main

import (
	"os"

	"shopping-list/cmd/shoplist/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
