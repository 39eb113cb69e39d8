package main

import (
	"os"

	"github.com/lectorterm/lector/cmd/lector/cli"
)

func main() {
	os.Exit(cli.Execute())
}
