package editor

import (
	"strings"

	"github.com/iw2rmb/podgt/internal/grapheme"
	"github.com/iw2rmb/podgt/pod"
)

// fillAtCursor reflows the paragraph under the cursor to the fill column.
func (m *Model) fillAtCursor() string {
	if m.cfg.Markup == nil {
		return ""
	}
	text := m.buf.Text()
	para := m.cfg.Markup.Scanner.Config().Paragraph
	start, end := para(text, m.buf.Offset(m.buf.Cursor()))

	filled, ok := fillParagraph(text, start, end, m.cfg.fillColumn(), m.cfg.Markup.NoBreak)
	if !ok {
		return "not a fillable paragraph"
	}
	m.buf.ReplaceBytes(start, end, filled)
	return ""
}

// fillParagraph greedily packs the words of text[start:end] into lines of at
// most width cells. A break before a word is skipped when the advisor
// suppresses it, so such lines may run long. Verbatim paragraphs (leading
// blank) and command paragraphs (leading '=') are not filled.
func fillParagraph(text string, start, end, width int, adv *pod.NoBreakAdvisor) (string, bool) {
	para := text[start:end]
	if strings.TrimSpace(para) == "" || para[0] == ' ' || para[0] == '\t' || para[0] == '=' {
		return "", false
	}

	var sb strings.Builder
	lineWidth := -1
	for i := start; i < end; {
		for i < end && isFillSpace(text[i]) {
			i++
		}
		if i == end {
			break
		}
		j := i
		for j < end && !isFillSpace(text[j]) {
			j++
		}
		word := text[i:j]
		w := grapheme.Width(word)

		switch {
		case lineWidth < 0:
			lineWidth = w
		case lineWidth+1+w <= width || adv.ShouldSuppressBreak(text, i):
			sb.WriteByte(' ')
			lineWidth += 1 + w
		default:
			sb.WriteByte('\n')
			lineWidth = w
		}
		sb.WriteString(word)
		i = j
	}
	return sb.String(), true
}

func isFillSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
