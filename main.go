package main

import (
	"os"

	"github.com/adasgupta/skillbridge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
