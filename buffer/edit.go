package buffer

import (
	"strings"

	"github.com/iw2rmb/podgt/internal/grapheme"
)

// InsertText inserts s at the cursor, replacing the active selection.
func (b *Buffer) InsertText(s string) {
	r, ok := b.Selection()
	if !ok {
		if s == "" {
			return
		}
		r = Range{Start: b.cursor, End: b.cursor}
	}
	b.edit(ChangeSourceLocal, TextEdit{Range: r, Text: s})
}

// InsertNewline splits the line at the cursor.
func (b *Buffer) InsertNewline() { b.InsertText("\n") }

// DeleteBackward removes the grapheme before the cursor, joining lines at
// column 0. An active selection is deleted instead.
func (b *Buffer) DeleteBackward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	start := b.moveGrapheme(b.cursor, DirLeft)
	if start == b.cursor {
		return
	}
	b.edit(ChangeSourceLocal, TextEdit{Range: Range{Start: start, End: b.cursor}})
}

// DeleteForward removes the grapheme after the cursor, joining lines at the
// end of a row.
func (b *Buffer) DeleteForward() {
	if _, ok := b.Selection(); ok {
		b.DeleteSelection()
		return
	}
	end := b.moveGrapheme(b.cursor, DirRight)
	if end == b.cursor {
		return
	}
	b.edit(ChangeSourceLocal, TextEdit{Range: Range{Start: b.cursor, End: end}})
}

func (b *Buffer) DeleteSelection() {
	r, ok := b.Selection()
	if !ok {
		return
	}
	b.edit(ChangeSourceLocal, TextEdit{Range: r})
}

// edit applies edits in order as one undoable change. The cursor lands at the
// end of the last effective edit and the selection is cleared.
func (b *Buffer) edit(src ChangeSource, edits ...TextEdit) bool {
	prev := b.snapshot()
	change := b.beginChange(src)

	cursor, changed := b.cursor, false
	for _, e := range edits {
		next, applied, ok := b.replaceRange(e.Range, e.Text)
		if !ok {
			continue
		}
		cursor, changed = next, true
		change.addAppliedEdit(applied)
	}
	if !changed {
		return false
	}

	b.cursor = b.clampPos(cursor)
	b.sel = selectionState{}
	b.version++
	b.textVersion++
	b.recordUndo(prev)
	b.commitChange(change)
	return true
}

func (b *Buffer) replaceRange(r Range, text string) (Pos, AppliedEdit, bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	deleted := textForRange(b.lines, r)
	if deleted == text {
		return b.cursor, AppliedEdit{}, false
	}

	prefix := b.lines[r.Start.Row][:r.Start.GraphemeCol]
	suffix := b.lines[r.End.Row][r.End.GraphemeCol:]

	parts := strings.Split(text, "\n")
	repl := make([][]string, len(parts))
	for i, p := range parts {
		repl[i] = grapheme.Split(p)
	}
	last := len(repl) - 1
	end := Pos{Row: r.Start.Row + last, GraphemeCol: len(repl[last])}
	if last == 0 {
		end.GraphemeCol += len(prefix)
	}

	repl[0] = append(append([]string(nil), prefix...), repl[0]...)
	repl[last] = append(repl[last], suffix...)

	out := make([][]string, 0, len(b.lines)-(r.End.Row-r.Start.Row)+last)
	out = append(out, b.lines[:r.Start.Row]...)
	out = append(out, repl...)
	out = append(out, b.lines[r.End.Row+1:]...)
	b.lines = out

	return end, AppliedEdit{
		RangeBefore: r,
		RangeAfter:  Range{Start: r.Start, End: end},
		InsertText:  text,
		DeletedText: deleted,
	}, true
}

func textForRange(lines [][]string, r Range) string {
	r = NormalizeRange(r)
	if r.IsEmpty() {
		return ""
	}
	if r.Start.Row == r.End.Row {
		return grapheme.Join(lines[r.Start.Row][r.Start.GraphemeCol:r.End.GraphemeCol])
	}

	var sb strings.Builder
	for row := r.Start.Row; row <= r.End.Row; row++ {
		from, to := 0, len(lines[row])
		if row == r.Start.Row {
			from = r.Start.GraphemeCol
		} else {
			sb.WriteByte('\n')
		}
		if row == r.End.Row {
			to = r.End.GraphemeCol
		}
		sb.WriteString(grapheme.Join(lines[row][from:to]))
	}
	return sb.String()
}
