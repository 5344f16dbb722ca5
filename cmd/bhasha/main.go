package main

import (
	"os"

	"github.com/bhasha-labs/bhasha/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
