package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/podgt/buffer"
	"github.com/iw2rmb/podgt/internal/config"
	"github.com/iw2rmb/podgt/internal/grapheme"
	"github.com/iw2rmb/podgt/pod"
)

type lintStyles struct {
	pos, rule, caret lipgloss.Style
}

func newLintStyles(w io.Writer, mode string) lintStyles {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorAlways:
		r.SetColorProfile(termenv.ANSI256)
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	}
	return lintStyles{
		pos:   r.NewStyle().Bold(true),
		rule:  r.NewStyle().Foreground(lipgloss.Color("214")),
		caret: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func newLintCmd(a *app) *cobra.Command {
	var color string
	cmd := &cobra.Command{
		Use:   "lint FILE...",
		Short: "Report suspicious markup constructs",
		Long: `lint scans each file for constructs that usually mean a markup span was
closed too early or was written with unbalanced padding, such as C<$a->b>
or C<<x >>. It exits 1 when any warning was printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("color") {
				a.cfg.Lint.Color = color
				if err := a.cfg.Validate(); err != nil {
					return err
				}
			}
			st := newLintStyles(a.stdout, a.cfg.Lint.Color)

			total := 0
			for _, path := range args {
				text, _, err := readFile(path)
				if err != nil {
					return err
				}
				ws := a.assist.Warnings.Scan(text, 0, len(text))
				a.log.Debug("scanned", slog.String("file", path), slog.Int("warnings", len(ws)))
				printWarnings(a.stdout, st, path, text, ws)
				total += len(ws)
			}
			if total > 0 {
				return errWarnings
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&color, "color", config.ColorAuto, "colorize output: auto, always or never")
	return cmd
}

func printWarnings(w io.Writer, st lintStyles, path, text string, ws []pod.Warning) {
	if len(ws) == 0 {
		return
	}
	b := buffer.New(text, buffer.Options{HistoryLimit: -1})
	for _, warn := range ws {
		p := b.PosAt(warn.Start)
		line := b.Line(p.Row)
		lineStart := b.Offset(buffer.Pos{Row: p.Row})

		fmt.Fprintf(w, "%s %s %s\n",
			st.pos.Render(fmt.Sprintf("%s:%d:%d:", path, p.Row+1, p.GraphemeCol+1)),
			st.rule.Render(warn.Rule+":"),
			warn.Message)

		end := min(warn.End-lineStart, len(line))
		token := line[warn.Start-lineStart : end]
		fmt.Fprintf(w, "    %s\n    %s%s\n",
			line,
			caretPad(line[:warn.Start-lineStart]),
			st.caret.Render(strings.Repeat("^", max(1, grapheme.Width(token)))))
	}
}

// caretPad returns blank space as wide as prefix, keeping tabs so the caret
// lines up under the echoed source line.
func caretPad(prefix string) string {
	var sb strings.Builder
	for _, g := range grapheme.Split(prefix) {
		if g == "\t" {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", grapheme.Width(g)))
	}
	return sb.String()
}
