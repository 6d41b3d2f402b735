package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// outputHelper wraps a cobra.Command to provide convenient output methods
type outputHelper struct {
	cmd *cobra.Command
}

// newOutputHelper creates an output helper for the given command
func newOutputHelper(cmd *cobra.Command) *outputHelper {
	return &outputHelper{cmd: cmd}
}

// println writes a line to the command's output
func (o *outputHelper) println(args ...interface{}) {
	fmt.Fprintln(o.cmd.OutOrStdout(), args...)
}

// printf writes formatted output to the command's output
func (o *outputHelper) printf(format string, args ...interface{}) {
	fmt.Fprintf(o.cmd.OutOrStdout(), format, args...)
}

// printErr writes a line to the command's error output
func (o *outputHelper) printErr(args ...interface{}) {
	fmt.Fprintln(o.cmd.ErrOrStderr(), args...)
}
