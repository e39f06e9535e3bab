// Command loom runs and measures the showcase applications.
package main

import (
	"os"

	"github.com/go-drift/loom/cmd/loom/cmd"
)

func main() {
	if err := cmd.New().Execute(); err != nil {
		os.Exit(1)
	}
}
