package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/podgt/buffer"
)

func (m *Model) renderContent() string {
	n := m.buf.LineCount()
	cursor := m.buf.Cursor()
	sel, selOK := m.buf.Selection()

	digits := 0
	if m.cfg.ShowLineNums {
		digits = len(fmt.Sprint(n))
	}

	// Highlighting is limited to the rows on screen.
	start, end := 0, 0
	if h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize(); h > 0 {
		start = clampInt(m.viewport.YOffset, 0, n)
		end = min(start+h, n)
	}
	warnings := m.warningSpans(start, end)

	out := make([]string, 0, n)
	off := 0
	for row := 0; row < n; row++ {
		clusters := m.buf.LineGraphemes(row)
		var sb strings.Builder

		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digits, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}

		var spans []HighlightSpan
		if row >= start && row < end {
			spans = m.highlightLine(row, off, clusters, cursor)
			spans = append(spans, warnings[row]...)
		}
		sb.WriteString(m.renderLine(row, clusters, cursor, sel, selOK, spans))

		out = append(out, sb.String())
		off += len(strings.Join(clusters, "")) + 1
	}
	return strings.Join(out, "\n")
}

func (m *Model) highlightLine(row, off int, clusters []string, cursor buffer.Pos) []HighlightSpan {
	if m.cfg.Highlighter == nil {
		return nil
	}
	ctx := LineContext{
		Row:    row,
		Text:   strings.Join(clusters, ""),
		Offset: off,
	}
	if cursor.Row == row {
		ctx.HasCursor = true
		ctx.CursorGraphemeCol = clampInt(cursor.GraphemeCol, 0, len(clusters))
	}
	spans, err := m.cfg.Highlighter.HighlightLine(ctx)
	if err != nil {
		return nil
	}
	return normalizeHighlightSpans(spans, len(clusters))
}

// renderLine styles each cluster. Later layers win: text, host highlights,
// warnings, selection, cursor.
func (m *Model) renderLine(row int, clusters []string, cursor buffer.Pos, sel buffer.Range, selOK bool, spans []HighlightSpan) string {
	st := m.cfg.Style
	styles := make([]lipgloss.Style, len(clusters))
	for i := range styles {
		styles[i] = st.Text
	}
	for _, sp := range spans {
		for i := clampInt(sp.StartGraphemeCol, 0, len(clusters)); i < min(sp.EndGraphemeCol, len(clusters)); i++ {
			styles[i] = sp.Style
		}
	}
	if from, to, ok := selectionCols(sel, selOK, row, len(clusters)); ok {
		for i := from; i < to; i++ {
			styles[i] = st.Selection
		}
	}

	hasCursor := m.focused && cursor.Row == row
	var sb strings.Builder
	for i, g := range clusters {
		if hasCursor && cursor.GraphemeCol == i {
			sb.WriteString(st.Cursor.Render(g))
			continue
		}
		sb.WriteString(styles[i].Render(g))
	}
	if hasCursor && cursor.GraphemeCol >= len(clusters) {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionCols(sel buffer.Range, ok bool, row, lineLen int) (from, to int, has bool) {
	if !ok || row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	from, to = 0, lineLen
	if row == sel.Start.Row {
		from = clampInt(sel.Start.GraphemeCol, 0, lineLen)
	}
	if row == sel.End.Row {
		to = clampInt(sel.End.GraphemeCol, 0, lineLen)
	}
	return from, to, from < to
}
