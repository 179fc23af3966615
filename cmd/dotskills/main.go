package main

import (
	"os"

	"github.com/dotskills/dotskills/internal/cli"
	"github.com/dotskills/dotskills/pkg/display"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		display.NewAutoRenderer(os.Stderr).RenderError(err)
		os.Exit(1)
	}
}
