package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func newSpanCmd(a *app) *cobra.Command {
	var pos position
	cmd := &cobra.Command{
		Use:   "span FILE",
		Short: "Print the markup span enclosing a position",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readFile(args[0])
			if err != nil {
				return err
			}
			off, err := pos.resolve(text)
			if err != nil {
				return err
			}
			sp, ok := a.assist.Scanner.SpanAt(text, off)
			if !ok {
				fmt.Fprintln(a.stdout, "none")
				return nil
			}
			fmt.Fprintln(a.stdout, sp)
			return nil
		},
	}
	pos.register(cmd)
	return cmd
}

func newNoBreakCmd(a *app) *cobra.Command {
	var pos position
	cmd := &cobra.Command{
		Use:   "nobreak FILE",
		Short: "Report whether a line break may be placed at a position",
		Long: `nobreak prints "suppress" when a fill or wrap must not break the line at
the position, and "allow" otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readFile(args[0])
			if err != nil {
				return err
			}
			off, err := pos.resolve(text)
			if err != nil {
				return err
			}
			if a.assist.NoBreak.ShouldSuppressBreak(text, off) {
				fmt.Fprintln(a.stdout, "suppress")
			} else {
				fmt.Fprintln(a.stdout, "allow")
			}
			return nil
		},
	}
	pos.register(cmd)
	return cmd
}

func newGTCmd(a *app) *cobra.Command {
	var pos position
	cmd := &cobra.Command{
		Use:   "gt FILE",
		Short: "Print what typing '>' at a position would insert",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readFile(args[0])
			if err != nil {
				return err
			}
			off, err := pos.resolve(text)
			if err != nil {
				return err
			}
			ins := a.assist.GreaterThan.ResolveAt(text, off)
			a.log.Debug("gt", slog.Int("offset", off), slog.String("insert", ins))
			fmt.Fprintln(a.stdout, ins)
			return nil
		},
	}
	pos.register(cmd)
	return cmd
}
