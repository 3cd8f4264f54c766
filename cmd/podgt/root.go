package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/podgt/internal/config"
	"github.com/iw2rmb/podgt/pod"
)

// errWarnings makes lint exit non-zero without printing an extra error.
var errWarnings = errors.New("warnings found")

type app struct {
	stdout, stderr io.Writer

	configPath string
	verbose    bool

	loader *config.Loader
	cfg    config.Config
	log    *slog.Logger
	assist *pod.Assist
}

func newRootCmd(stdout, stderr io.Writer, loader *config.Loader) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, loader: loader}

	root := &cobra.Command{
		Use:   "podgt",
		Short: "Markup assist for POD documentation",
		Long: `podgt understands the inline markup of POD documents (C<...>, B<< ... >>,
E<gt> and friends). It finds the span around an offset, lints likely
markup mistakes, rewrites spans between the single and doubled angle
forms, and runs an editor with these assists built in.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error { return a.setup(cmd.Flags()) },
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default ./"+config.FileName+" when present)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "log debug details to stderr")
	pf.String("tags", "", "override the recognized markup tag letters")

	root.AddCommand(
		newLintCmd(a),
		newSpanCmd(a),
		newNoBreakCmd(a),
		newGTCmd(a),
		newRewriteCmd(a, "double"),
		newRewriteCmd(a, "single"),
		newEditCmd(a),
		newVersionCmd(a),
	)
	return root
}

func (a *app) setup(flags *pflag.FlagSet) error {
	level := slog.LevelWarn
	if a.verbose {
		level = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := a.loader.Load(a.configPath)
	if err != nil {
		return err
	}
	if flags.Changed("tags") {
		cfg.Markup.Tags, _ = flags.GetString("tags")
		if err := cfg.Validate(); err != nil {
			return errors.Wrap(err, "--tags")
		}
	}
	pc, err := cfg.Pod()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.assist = pod.New(pc, cfg.Lint.Rules...)
	a.log.Debug("config loaded",
		slog.String("source", cfg.Source),
		slog.String("tags", pc.Tags),
		slog.Any("rules", cfg.Lint.Rules))
	return nil
}

func readFile(path string) (string, os.FileMode, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return "", 0, errors.Wrap(err, "reading input")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", 0, errors.Wrap(err, "reading input")
	}
	return string(data), fi.Mode().Perm(), nil
}
