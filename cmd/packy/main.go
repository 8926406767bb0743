package main

import (
	"os"

	"packy/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
