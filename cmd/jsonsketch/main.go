package main

import (
	"fmt"
	"os"

	"github.com/flavono123/jsonsketch/cmd/commands"
)

// Version is set during build with -ldflags
var version = "dev"

func main() {
	rootCmd := commands.NewRootCommand(version, &commands.Options{})
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
