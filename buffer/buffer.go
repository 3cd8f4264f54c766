package buffer

import (
	"strings"

	"github.com/iw2rmb/podgt/internal/grapheme"
)

// DefaultHistoryLimit bounds the undo stack when Options leaves it unset.
const DefaultHistoryLimit = 1000

type Options struct {
	// HistoryLimit caps undo depth. Zero selects DefaultHistoryLimit and a
	// negative value disables history.
	HistoryLimit int
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the document state: grapheme lines, cursor and selection.
//
// Version advances on any observable change. TextVersion advances only when
// the text itself changes, so callers that re-scan markup can skip cursor
// motion.
type Buffer struct {
	lines       [][]string
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = DefaultHistoryLimit
	}
	return &Buffer{lines: splitLines(text), opt: opt}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, g := range line {
			sb.WriteString(g)
		}
	}
	return sb.String()
}

// LineCount returns the number of logical lines. It is always at least 1.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns row as a string, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return grapheme.Join(b.lines[row])
}

// LineGraphemes returns a copy of the clusters of row.
func (b *Buffer) LineGraphemes(row int) []string {
	if row < 0 || row >= len(b.lines) {
		return nil
	}
	return append([]string(nil), b.lines[row]...)
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

func (b *Buffer) SetSelection(r Range) {
	r = ClampRange(r, len(b.lines), b.lineLen)
	next := selectionState{active: true, anchor: r.Start, end: r.End}
	if NormalizeRange(r).IsEmpty() {
		next = selectionState{}
	}

	prev, prevOK := b.Selection()
	b.sel = next
	cur, curOK := b.Selection()
	if prevOK == curOK && prev == cur {
		return
	}
	b.version++
}

func (b *Buffer) ClearSelection() {
	_, had := b.Selection()
	b.sel = selectionState{}
	if had {
		b.version++
	}
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]string {
	parts := strings.Split(text, "\n")
	lines := make([][]string, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, grapheme.Split(s))
	}
	return lines
}
