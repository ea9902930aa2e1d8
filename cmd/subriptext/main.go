package main

import (
	"os"

	"github.com/FanLemon/Subtitle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
