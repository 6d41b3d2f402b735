package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxbel/dirkit/internal/config"
	"github.com/oxbel/dirkit/internal/logger"
	"github.com/oxbel/dirkit/internal/stub"
	"github.com/oxbel/dirkit/internal/ui"
	"github.com/oxbel/dirkit/internal/utils"
)

// NewStubCommand creates the stub command
func NewStubCommand() *cobra.Command {
	var (
		name      string
		skipFirst bool
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "stub [dir]",
		Short: "Create missing README.md stubs in subdirectories",
		Long: `Scan the immediate subdirectories of a directory and create an empty
README.md placeholder in each one that lacks it.

Existing files are never modified, so running the command twice is safe.
By default the first directory of the listing is skipped; pass
--skip-first=false to stub every subdirectory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStub(cmd, args, name, skipFirst, dryRun)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Stub filename (default from config, normally README.md)")
	cmd.Flags().BoolVar(&skipFirst, "skip-first", true, "Skip the first directory of the listing")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report what would be created without writing anything")

	return cmd
}

// runStub executes the stub command
func runStub(cmd *cobra.Command, args []string, name string, skipFirst, dryRun bool) error {
	styledOut := ui.NewOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// Flags win over config; unset flags fall back to configured defaults
	if name == "" {
		name = cfg.StubName
	}
	if !cmd.Flags().Changed("skip-first") {
		skipFirst = cfg.SkipFirst
	}

	dir := ""
	if len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}
	}
	dir, err = utils.NormalizePath(dir)
	if err != nil {
		return err
	}

	log.Info("creating stubs", "dir", dir, "name", name, "skipFirst", skipFirst, "dryRun", dryRun)

	created, err := stub.Create(stub.Options{
		Dir:       dir,
		Name:      name,
		SkipFirst: skipFirst,
		DryRun:    dryRun,
	})
	if err != nil {
		log.Error("stub creation failed", "error", err)
		return err
	}

	for _, c := range created {
		if dryRun {
			styledOut.Printf("Would create %s\n", c.Path)
		} else {
			styledOut.Printf("File Created %s\n", c.Path)
		}
	}

	switch {
	case dryRun:
		styledOut.Muted(fmt.Sprintf("Dry run: %d stub(s) would be created.", len(created)))
	case len(created) == 0:
		styledOut.Muted(fmt.Sprintf("All subdirectories already have %s.", name))
	default:
		styledOut.Success(fmt.Sprintf("Created %d stub(s).", len(created)))
	}

	return nil
}
