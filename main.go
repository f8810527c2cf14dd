package main

import (
	"os"

	"mazestalker/pkg/game/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
