package main

import (
	"os"

	"github.com/ikshantshukla123/Codediff.ai/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}
