package main

import (
	"os"

	"github.com/moqui-example/moqui-agents/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
