package main

import (
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/podgt/buffer"
)

// position selects a place in a file either by byte offset or by 1-based
// line and grapheme column.
type position struct {
	offset int
	line   int
	col    int
}

func (p *position) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&p.offset, "offset", -1, "byte offset into the file")
	f.IntVar(&p.line, "line", 0, "1-based line (with --col)")
	f.IntVar(&p.col, "col", 1, "1-based column in grapheme clusters")
	cmd.MarkFlagsMutuallyExclusive("offset", "line")
}

func (p position) resolve(text string) (int, error) {
	switch {
	case p.offset >= 0:
		if p.offset > len(text) {
			return 0, errors.Newf("--offset %d is past the end of the input (%d bytes)", p.offset, len(text))
		}
		return p.offset, nil
	case p.line > 0:
		if p.col < 1 {
			return 0, errors.Newf("--col must be at least 1, got %d", p.col)
		}
		b := buffer.New(text, buffer.Options{HistoryLimit: -1})
		if p.line > b.LineCount() {
			return 0, errors.Newf("--line %d is past the last line (%d)", p.line, b.LineCount())
		}
		return b.Offset(buffer.Pos{Row: p.line - 1, GraphemeCol: p.col - 1}), nil
	default:
		return 0, errors.New("a position is required: pass --offset or --line/--col")
	}
}
