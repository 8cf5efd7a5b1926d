package main

import (
	"os"

	"github.com/aledsdavies/pow/cli"
)

func main() {
	os.Exit(cli.Execute())
}
