package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/oxbel/dirkit/internal/buildinfo"
	"github.com/oxbel/dirkit/internal/commands"
	"github.com/oxbel/dirkit/internal/logger"
)

func main() {
	// Log command invocation with context
	log := logger.Get()
	cwd, _ := os.Getwd()
	log.Info("command invoked",
		"version", buildinfo.Version,
		"command", strings.Join(os.Args[1:], " "),
		"cwd", cwd)

	rootCmd := &cobra.Command{
		Use:   "dirkit",
		Short: "dirkit - small directory chores: README stubs and folder printing",
		Long: `dirkit is a CLI for two small directory chores: creating missing
README.md placeholder files in subdirectories, and printing the contents
of every file in a folder, optionally filtered by extension.`,
		Version: buildinfo.String(),
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunDefaultCommand(cmd, args)
		},
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(commands.NewStubCommand())
	rootCmd.AddCommand(commands.NewPrintCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
