package main

import (
	"os"

	"github.com/ironsheep/magick-tools-mcp/cmd/magick-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
