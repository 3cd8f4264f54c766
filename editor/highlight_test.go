package editor

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

func TestHighlighting_CalledOnlyForVisibleLines(t *testing.T) {
	var rows []int
	m := New(Config{
		Text: "a\nb\nc",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			rows = append(rows, ctx.Row)
			return nil, nil
		}),
	})
	m = m.SetSize(10, 1)
	rows = nil
	_ = m.renderContent()

	if len(rows) != 1 || rows[0] != 0 {
		t.Fatalf("highlighter rows: got %v, want %v", rows, []int{0})
	}
}

func TestHighlighting_ContextCarriesOffsets(t *testing.T) {
	var got []LineContext
	m := New(Config{
		Text: "ab\nC<x>",
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			got = append(got, ctx)
			return nil, nil
		}),
	})
	m.Buffer().SetCursor(cursorAt(1, 2))
	m = m.SetSize(10, 2)
	got = nil
	_ = m.renderContent()

	if len(got) != 2 || got[1].Offset != 3 || got[1].Text != "C<x>" {
		t.Fatalf("contexts: %+v", got)
	}
	if got[0].HasCursor || !got[1].HasCursor || got[1].CursorGraphemeCol != 2 {
		t.Fatalf("cursor context: %+v", got)
	}
}

func TestHighlighting_ErrorFallsBackToPlainText(t *testing.T) {
	r := testRenderer()
	st := Style{Text: r.NewStyle()}

	m := New(Config{
		Text:  "abcd",
		Style: st,
		Highlighter: HighlighterFunc(func(ctx LineContext) ([]HighlightSpan, error) {
			return []HighlightSpan{{StartGraphemeCol: 1, EndGraphemeCol: 3, Style: r.NewStyle().Underline(true)}}, errors.New("boom")
		}),
	})
	m = m.SetSize(10, 1)
	m = m.Blur()

	want := st.Text.Render("a") + st.Text.Render("b") + st.Text.Render("c") + st.Text.Render("d")
	if got := m.renderContent(); got != want {
		t.Fatalf("unexpected render with highlighter error:\n got: %q\nwant: %q", got, want)
	}
}

func TestNormalizeHighlightSpans(t *testing.T) {
	s := lipgloss.NewStyle()
	got := normalizeHighlightSpans([]HighlightSpan{
		{StartGraphemeCol: 5, EndGraphemeCol: 2, Style: s},
		{StartGraphemeCol: 3, EndGraphemeCol: 9, Style: s},
		{StartGraphemeCol: -4, EndGraphemeCol: 1, Style: s},
		{StartGraphemeCol: 7, EndGraphemeCol: 7, Style: s},
	}, 6)

	if len(got) != 2 {
		t.Fatalf("spans=%+v", got)
	}
	if got[0].StartGraphemeCol != 0 || got[0].EndGraphemeCol != 1 || got[1].StartGraphemeCol != 2 || got[1].EndGraphemeCol != 5 {
		t.Fatalf("spans=%+v", got)
	}
}
