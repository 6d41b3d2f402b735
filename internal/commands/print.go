package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oxbel/dirkit/internal/config"
	"github.com/oxbel/dirkit/internal/logger"
	"github.com/oxbel/dirkit/internal/printer"
	"github.com/oxbel/dirkit/internal/ui"
	"github.com/oxbel/dirkit/internal/utils"
)

// NewPrintCommand creates the print command
func NewPrintCommand() *cobra.Command {
	var ext string

	cmd := &cobra.Command{
		Use:   "print [folder]",
		Short: "Print the contents of files in a folder",
		Long: `Read every regular file in a folder (non-recursive) and print its
contents framed by banner lines. An extension filter limits which files
are printed.

When no folder is given, the command prompts for the folder path and the
extension filter interactively. A file that cannot be read as text is
reported and skipped; it does not stop the batch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prompter := NewStdPrompter(cmd.InOrStdin(), cmd.ErrOrStderr())
			return runPrint(cmd, args, prompter, ext)
		},
	}

	cmd.Flags().StringVar(&ext, "ext", "", "Only print files whose name ends with this extension (e.g. .txt)")

	return cmd
}

// runPrint executes the print command
func runPrint(cmd *cobra.Command, args []string, prompter Prompter, ext string) error {
	styledOut := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var folder string
	if len(args) > 0 {
		folder = args[0]
		if !cmd.Flags().Changed("ext") {
			ext = cfg.DefaultExtension
		}
	} else {
		// Interactive mode mirrors the classic two-question flow
		folder, err = prompter.Prompt("enter folder path: ")
		if err != nil {
			return err
		}
		if cfg.DefaultExtension != "" {
			ext, err = prompter.PromptWithDefault("Enter the file extension to filter", cfg.DefaultExtension)
		} else {
			ext, err = prompter.Prompt("Enter the file extension to filter: ")
		}
		if err != nil {
			return err
		}
	}

	if folder == "" {
		styledOut.Error("Error: '' is not a valid directory.")
		return nil
	}
	folder, err = utils.NormalizePath(folder)
	if err != nil {
		return err
	}

	log.Info("printing folder", "folder", folder, "ext", ext)

	results, err := printer.Collect(folder, ext)
	if errors.Is(err, printer.ErrNotDirectory) {
		// An invalid folder stops the operation cleanly: one error line,
		// no banners, no non-zero exit
		styledOut.Error(fmt.Sprintf("Error: '%s' is not a valid directory.", folder))
		log.Warn("invalid folder", "folder", folder)
		return nil
	}
	if err != nil {
		log.Error("listing failed", "folder", folder, "error", err)
		return err
	}

	failures := printer.Render(cmd.OutOrStdout(), results)
	if failures > 0 {
		log.Warn("some files could not be read", "failures", failures)
	}

	return nil
}
