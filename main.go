package main

import (
	"os"

	"github.com/promptstack/promptsite/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
