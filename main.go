package main

import (
	"os"

	"github.com/clientfirst-digital/menuengine/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
