package main

import (
	"os"

	"github.com/camposb/preu/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
