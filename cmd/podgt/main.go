// Command podgt checks and rewrites POD markup spans.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/iw2rmb/podgt/internal/config"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr, config.NewLoader())
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errWarnings) {
			fmt.Fprintf(os.Stderr, "podgt: %v\n", err)
		}
		os.Exit(1)
	}
}
