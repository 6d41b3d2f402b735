package commands

import (
	"github.com/spf13/cobra"
)

// RunDefaultCommand runs when dirkit is invoked without a subcommand
func RunDefaultCommand(cmd *cobra.Command, args []string) error {
	out := newOutputHelper(cmd)

	out.printErr("dirkit keeps small directory chores out of your way.")
	out.printErr("")
	out.printErr("To get started:")
	out.printErr("  dirkit stub     create missing README.md stubs in subdirectories")
	out.printErr("  dirkit print    print the contents of files in a folder")
	out.printErr("")
	return cmd.Help()
}
