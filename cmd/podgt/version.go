package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/podgt"
)

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the podgt version",
		Args:  cobra.NoArgs,
		// Skip config loading so a broken config file does not hide the version.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			fmt.Fprintln(a.stdout, podgt.VersionTag())
		},
	}
}
