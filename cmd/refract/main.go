package main

import (
	"os"

	"github.com/semweave/refract/pkg/cli"
)

const version = "0.1.0"

func main() {
	root := cli.NewRootCmd(version)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
