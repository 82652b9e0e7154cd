package main

import (
	"os"

	"github.com/go-kdr/kdr/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
