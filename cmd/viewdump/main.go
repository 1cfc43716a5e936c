package main

import (
	"os"

	"github.com/rawbytedev/bufview/cmd/viewdump/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
