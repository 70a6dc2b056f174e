package main

import (
	"os"

	"github.com/msto63/peregrine/cmd/peregrine/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
