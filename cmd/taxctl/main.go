package main

import (
	"os"

	"github.com/taxpro/taxpro-api/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	err := cmd.Execute()
	os.Exit(cli.GetExitCode(err))
}
