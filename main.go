package main

import (
	"os"

	"github.com/lindiff/lindiff/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
