package main

import (
	"os"

	"github.com/focus-hub/focus-core/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
