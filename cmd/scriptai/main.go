package main

import (
	"os"

	"github.com/shivam5475/scriptai/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
