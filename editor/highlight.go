package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// HighlightSpan styles the grapheme columns [StartGraphemeCol, EndGraphemeCol)
// of one line.
type HighlightSpan struct {
	StartGraphemeCol int
	EndGraphemeCol   int
	Style            lipgloss.Style
}

type LineContext struct {
	Row  int
	Text string
	// Offset is the byte offset of the line start in the whole document.
	Offset int

	// CursorGraphemeCol is valid when HasCursor is set.
	CursorGraphemeCol int
	HasCursor         bool
}

// Highlighter returns style spans for one line. Errors drop the line's spans.
type Highlighter interface {
	HighlightLine(ctx LineContext) ([]HighlightSpan, error)
}

// HighlighterFunc adapts a function to Highlighter.
type HighlighterFunc func(ctx LineContext) ([]HighlightSpan, error)

func (f HighlighterFunc) HighlightLine(ctx LineContext) ([]HighlightSpan, error) {
	return f(ctx)
}

// normalizeHighlightSpans clamps spans to the line, drops empty ones and
// resolves overlaps by keeping the span that starts first.
func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartGraphemeCol, 0, lineLen)
		end := clampInt(sp.EndGraphemeCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartGraphemeCol: start, EndGraphemeCol: end, Style: sp.Style})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartGraphemeCol < out[j].StartGraphemeCol
	})

	kept := out[:0]
	for _, sp := range out {
		if n := len(kept); n > 0 && sp.StartGraphemeCol < kept[n-1].EndGraphemeCol {
			continue
		}
		kept = append(kept, sp)
	}
	return kept
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
