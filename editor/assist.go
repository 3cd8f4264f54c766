package editor

// insertRunes types s at the cursor. A lone '>' goes through the
// GreaterThanInserter so it cannot close a single-angle span by accident.
func (m *Model) insertRunes(s string) {
	if s != ">" || m.cfg.Markup == nil {
		m.buf.InsertText(s)
		return
	}
	if _, ok := m.buf.Selection(); ok {
		m.buf.InsertText(s)
		return
	}
	text := m.buf.Text()
	off := m.buf.Offset(m.buf.Cursor())
	m.buf.InsertText(m.cfg.Markup.GreaterThan.ResolveAt(text, off))
}

// doubleAtCursor rewrites the span at the cursor into the doubled form and
// leaves the cursor before its closer. It returns a status message.
func (m *Model) doubleAtCursor() string {
	if m.cfg.Markup == nil {
		return ""
	}
	text := m.buf.Text()
	rw, err := m.cfg.Markup.Doubler.DoubleSpan(text, m.buf.Offset(m.buf.Cursor()))
	if err != nil {
		return err.Error()
	}
	m.buf.ReplaceBytes(rw.Range.Start, rw.Range.End, rw.Text)
	m.buf.SetCursor(m.buf.PosAt(rw.Span.End - len(" >>")))
	return ""
}

// singleAtCursor is the inverse of doubleAtCursor.
func (m *Model) singleAtCursor() string {
	if m.cfg.Markup == nil {
		return ""
	}
	text := m.buf.Text()
	rw, err := m.cfg.Markup.Doubler.SingleSpan(text, m.buf.Offset(m.buf.Cursor()))
	if err != nil {
		return err.Error()
	}
	m.buf.ReplaceBytes(rw.Range.Start, rw.Range.End, rw.Text)
	m.buf.SetCursor(m.buf.PosAt(rw.Span.End - len(">")))
	return ""
}

func (m *Model) rescanWarnings() {
	// Offsets past an edit shift, so nothing from the old text is kept.
	m.warnings.Clear()
	if m.cfg.Markup == nil {
		return
	}
	text := m.buf.Text()
	m.cfg.Markup.Warnings.Rescan(m.warnings, text, 0, len(text))
}

// warningSpans maps the current warnings onto rows in [start, end).
func (m *Model) warningSpans(start, end int) map[int][]HighlightSpan {
	if m.warnings.Len() == 0 {
		return nil
	}
	out := make(map[int][]HighlightSpan)
	for _, w := range m.warnings.All() {
		from, to := m.buf.PosAt(w.Range.Start), m.buf.PosAt(w.Range.End)
		for row := max(from.Row, start); row <= to.Row && row < end; row++ {
			sp := HighlightSpan{EndGraphemeCol: len(m.buf.LineGraphemes(row)), Style: m.cfg.Style.Warning}
			if row == from.Row {
				sp.StartGraphemeCol = from.GraphemeCol
			}
			if row == to.Row {
				sp.EndGraphemeCol = to.GraphemeCol
			}
			out[row] = append(out[row], sp)
		}
	}
	return out
}

