package main

import (
	"os"

	"github.com/GayathriPCh/LoLCode-AI/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
