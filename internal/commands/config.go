package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxbel/dirkit/internal/config"
	"github.com/oxbel/dirkit/internal/ui"
	"github.com/oxbel/dirkit/internal/ui/components"
)

// NewConfigCommand creates the config command and its subcommands
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize dirkit configuration",
		RunE:  runConfigShow,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Interactively initialize the configuration",
		RunE:  runConfigInit,
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := config.GetConfigFile()
			if err != nil {
				return err
			}
			newOutputHelper(cmd).println(configFile)
			return nil
		},
	})

	return cmd
}

// runConfigShow prints the effective configuration
func runConfigShow(cmd *cobra.Command, args []string) error {
	styledOut := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	styledOut.Header("dirkit configuration")
	styledOut.Newline()
	styledOut.KeyValue("Stub filename", cfg.StubName)
	styledOut.KeyValue("Skip first directory", fmt.Sprintf("%v", cfg.SkipFirst))
	extValue := cfg.DefaultExtension
	if extValue == "" {
		extValue = "(none)"
	}
	styledOut.KeyValue("Default extension filter", extValue)

	if !config.Exists() {
		styledOut.Newline()
		styledOut.Muted("No config file written yet; these are built-in defaults.")
		styledOut.Muted("Run 'dirkit config init' to persist changes.")
	}

	return nil
}

// runConfigInit interactively collects and saves the configuration
func runConfigInit(cmd *cobra.Command, args []string) error {
	styledOut := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if config.Exists() {
		styledOut.Warning("Configuration already exists.")
		confirmed, err := components.Confirm("Overwrite existing configuration?", false)
		if err != nil || !confirmed {
			return fmt.Errorf("initialization cancelled")
		}
	}

	styledOut.Header("Initialize dirkit")
	styledOut.Newline()

	stubName, err := components.InputWithDefault("Stub filename", cfg.StubName)
	if err != nil {
		return err
	}

	skipFirst, err := components.Confirm("Skip the first directory of the listing?", cfg.SkipFirst)
	if err != nil {
		return err
	}

	defaultExt, err := components.InputWithIO("Default extension filter (empty for none)",
		".txt", cfg.DefaultExtension, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	cfg.StubName = stubName
	cfg.SkipFirst = skipFirst
	cfg.DefaultExtension = defaultExt

	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	styledOut.Newline()
	styledOut.Success("Configuration saved!")

	return nil
}
