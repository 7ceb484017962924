package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fioncat/batify/cmd"
	"github.com/mattn/go-isatty"
)

func main() {
	color.NoColor = false
	if !isatty.IsTerminal(os.Stderr.Fd()) || os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}

	c := cmd.New()

	err := c.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
