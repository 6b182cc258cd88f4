package cmd

import (
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/isich/stripblock/internal/block"
)

func scanCmd(opts *options) *cobra.Command {
	var (
		needle string
		limit  int
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "scan [flags] filename",
		Aliases: []string{"sc"},
		Short:   "List lines that loosely match the block marker",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			src, err := fs.ReadFile(opts.fsys, args[0])
			if err != nil {
				return err
			}

			matches := block.Scan(src, needle, limit)
			if len(matches) == 0 {
				opts.status("no lines matching %q in the first %d lines of %s\n", needle, limit, args[0])

				return nil
			}

			printMatches(cmd.OutOrStdout(), matches)

			return nil
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)

	cmd.Flags().StringVarP(&needle, "needle", "n", block.DefaultNeedle, "substring to look for, compared case-insensitively")
	cmd.Flags().IntVar(&limit, "limit", scanLimit, "number of leading lines to scan")

	return cmd
}
