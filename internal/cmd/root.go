// Package cmd wires the stripblock command tree.
package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

const scanLimit = 100

type statusFunc func(format string, args ...interface{})

type options struct {
	quiet  bool
	status statusFunc
	fsys   FS
}

func (o *options) createStatus(w io.Writer) {
	if o.quiet {
		o.status = func(string, ...interface{}) {}

		return
	}

	o.status = func(format string, args ...interface{}) {
		fmt.Fprintf(w, format, args...)
	}
}

// Execute runs the command tree against the real filesystem and returns the
// process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	return run(args, stdout, stderr, osFS{})
}

func run(args []string, stdout, stderr io.Writer, fsys FS) int {
	opts := &options{fsys: fsys} //nolint:exhaustruct

	root := &cobra.Command{ //nolint:exhaustruct
		Use:          "stripblock",
		Short:        "Remove marker-delimited line blocks from text files",
		SilenceUsage: true,

		DisableAutoGenTag: true,
	}

	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.AddCommand(stripCmd(opts), scanCmd(opts))

	if err := root.Execute(); err != nil {
		return 1
	}

	return 0
}

func quietFlag(cmd *cobra.Command, opts *options) {
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress status messages")
}
