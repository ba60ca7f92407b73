package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/agentforge/internal/logger"
	"github.com/mark3labs/agentforge/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "▄▀█ █▀▀ █▀▀ █▄ █ ▀█▀ █▀▀ █▀█ █▀█ █▀▀ █▀▀"
	logoText2 = "█▀█ █▄█ ██▄ █ ▀█  █  █▀  █▄█ █▀▄ █▄█ ██▄"
)

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "agentforge",
	Short: "Create AI training agents and share a meeting link",
	RunE:  runCreate,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

agentforge walks you through creating an AI training agent: name it, give it
instructions and a knowledge base, then generate a meeting link to start a
training session with it.

Running agentforge with no subcommand is the same as 'agentforge create'.`

	addCreateFlags(rootCmd)

	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(sizeCmd)
}
