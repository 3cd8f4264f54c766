package buffer

// Apply applies edits in order as a single undoable change. Each range is
// read against the buffer as left by the previous edit and clamped into
// bounds. The cursor moves to the end of the last effective edit.
func (b *Buffer) Apply(edits ...TextEdit) {
	if len(edits) == 0 {
		return
	}
	b.edit(ChangeSourceLocal, edits...)
}

// ReplaceBytes replaces the byte range [start, end) of Text() with text as an
// assist change. Offsets are clamped and snapped to grapheme boundaries.
// It reports whether the document changed.
func (b *Buffer) ReplaceBytes(start, end int, text string) bool {
	if end < start {
		start, end = end, start
	}
	r := Range{Start: b.PosAt(start), End: b.PosAt(end)}
	return b.edit(ChangeSourceAssist, TextEdit{Range: r, Text: text})
}
