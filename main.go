package main

import (
	"os"

	"lurk/cli/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
