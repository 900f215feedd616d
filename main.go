package main

import (
	"os"

	"github.com/abhisek/kidlingo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
