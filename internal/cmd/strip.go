package cmd

import (
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rodaine/table"
	"github.com/spf13/cobra"

	"github.com/isich/stripblock/internal/block"
	"github.com/isich/stripblock/internal/mdhtml"
)

func stripCmd(opts *options) *cobra.Command {
	var (
		start    string
		end      string
		exclude  string
		needle   string
		profile  string
		all      bool
		truncate bool
		dryRun   bool
		markdown bool
		hook     string
	)

	cmd := &cobra.Command{ //nolint:exhaustruct
		Use:     "strip [flags] filename",
		Aliases: []string{"s"},
		Short:   "Remove the first marker-delimited block of lines and rewrite the file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.createStatus(cmd.ErrOrStderr())

			p, err := buildProfile(cmd, profile, start, end, exclude, needle)
			if err != nil {
				return err
			}

			stripOpts := block.Options{All: all, Truncate: truncate} //nolint:exhaustruct

			md := markdown
			if !cmd.Flag("markdown").Changed {
				md = isMarkdown(args[0])
			}

			return stripRun(cmd, opts, args[0], p, stripOpts, md, dryRun, hook)
		},

		DisableAutoGenTag: true,
	}

	quietFlag(cmd, opts)

	cmd.Flags().StringVar(&start, "start", block.DefaultStart, "glob pattern opening the block")
	cmd.Flags().StringVar(&end, "end", block.DefaultEnd, "glob pattern closing the block")
	cmd.Flags().StringVar(&exclude, "exclude", block.DefaultExclude, "substring disqualifying a candidate start line")
	cmd.Flags().StringVar(&needle, "needle", block.DefaultNeedle, "substring for the not-found diagnostic scan")
	cmd.Flags().StringVarP(&profile, "profile", "p", "", "marker profile as key=value words or a JSON object")
	cmd.Flags().BoolVar(&all, "all", false, "remove every matching block instead of only the first")
	cmd.Flags().BoolVar(&truncate, "truncate", false, "allow a block without an end marker to run to end of file")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report what would be removed without writing")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "only match markers inside raw HTML blocks; defaults to on for .md files")
	cmd.Flags().StringVar(&hook, "exec", "", "shell command to run after rewriting; {} expands to the filename")

	return cmd
}

func buildProfile(cmd *cobra.Command, profile, start, end, exclude, needle string) (*block.Profile, error) {
	if !cmd.Flag("profile").Changed {
		return block.New(start, end, exclude, needle)
	}

	p, err := block.ParseProfile(profile)
	if err != nil {
		return nil, err
	}

	if cmd.Flag("start").Changed {
		p.Start = start
	}

	if cmd.Flag("end").Changed {
		p.End = end
	}

	if cmd.Flag("exclude").Changed {
		p.Exclude = exclude
	}

	if cmd.Flag("needle").Changed {
		p.Needle = needle
	}

	return block.New(p.Start, p.End, p.Exclude, p.Needle)
}

func stripRun(cmd *cobra.Command, opts *options, filename string, p *block.Profile, stripOpts block.Options, markdown, dryRun bool, hook string) error {
	src, err := fs.ReadFile(opts.fsys, filename)
	if err != nil {
		return err
	}

	if markdown {
		ranges, rerr := mdhtml.Ranges(src)
		if rerr != nil {
			return rerr
		}

		// A document without raw HTML blocks allows no matches at all.
		if ranges == nil {
			ranges = []block.Range{}
		}

		stripOpts.Within = ranges
	}

	out, blocks, err := block.Strip(src, p, stripOpts)
	if err != nil {
		return err
	}

	if len(blocks) == 0 {
		opts.status("block not found in %s\n", filename)
		printMatches(cmd.OutOrStdout(), block.Scan(src, p.Needle, scanLimit))

		return nil
	}

	if dryRun {
		for _, b := range blocks {
			opts.status("would remove block L%d-%d from %s\n", b.StartLine, b.EndLine, filename)
		}

		return nil
	}

	if err := opts.fsys.WriteFile(filename, out, fileMode); err != nil {
		return err
	}

	for _, b := range blocks {
		opts.status("removed block L%d-%d from %s\n", b.StartLine, b.EndLine, filename)
	}

	if len(hook) != 0 {
		return runHook(hook, filename, cmd.OutOrStdout(), cmd.ErrOrStderr())
	}

	return nil
}

func isMarkdown(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".md", ".markdown":
		return true
	}

	return false
}

func printMatches(w io.Writer, matches []block.Match) {
	if len(matches) == 0 {
		return
	}

	tbl := table.New("LINE", "TEXT").WithWriter(w)

	for _, m := range matches {
		tbl.AddRow(m.Line, m.Text)
	}

	tbl.Print()
}
