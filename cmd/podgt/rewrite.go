package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/podgt/pod"
)

// newRewriteCmd builds "double" or "single".
func newRewriteCmd(a *app, form string) *cobra.Command {
	var (
		pos   position
		write bool
		diff  bool
	)
	short := "Rewrite the span at a position to the doubled-angle form"
	if form == "single" {
		short = "Rewrite the doubled-angle span at a position to the single-angle form"
	}
	cmd := &cobra.Command{
		Use:   form + " FILE",
		Short: short,
		Long: short + `.

By default the rewritten document is printed to stdout. --write replaces
the file in place and --diff prints a unified diff instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, perm, err := readFile(path)
			if err != nil {
				return err
			}
			off, err := pos.resolve(text)
			if err != nil {
				return err
			}

			var rw pod.Rewrite
			if form == "single" {
				rw, err = a.assist.Doubler.SingleSpan(text, off)
			} else {
				rw, err = a.assist.Doubler.DoubleSpan(text, off)
			}
			if err != nil {
				return errors.Wrapf(err, "%s:%d", path, off)
			}
			next := rw.Apply(text)
			a.log.Debug("rewrite",
				slog.String("form", form),
				slog.String("range", rw.Range.String()),
				slog.String("span", rw.Span.String()))

			if diff {
				if err := writeDiff(a.stdout, path, text, next); err != nil {
					return err
				}
			}
			if write {
				return errors.Wrap(os.WriteFile(path, []byte(next), perm), "writing output")
			}
			if !diff {
				_, err = io.WriteString(a.stdout, next)
				return err
			}
			return nil
		},
	}
	pos.register(cmd)
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a unified diff of the change")
	return cmd
}

func writeDiff(w io.Writer, path, before, after string) error {
	out, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  1,
	})
	if err != nil {
		return errors.Wrap(err, "diff")
	}
	_, err = fmt.Fprint(w, out)
	return err
}
