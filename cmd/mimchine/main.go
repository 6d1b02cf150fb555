package main

import (
	"os"

	"github.com/mimchine/mimchine/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
