package editor

import (
	"fmt"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestModel_SetSizeAffectsViewHeight(t *testing.T) {
	m := New(Config{Text: "a\nb\nc"})
	m = m.Blur()

	m = m.SetSize(20, 2)
	if got := lipgloss.Height(m.View()); got != 2 {
		t.Fatalf("height after SetSize(20,2): got %d, want %d", got, 2)
	}
	m = m.SetSize(20, 4)
	if got := lipgloss.Height(m.View()); got != 4 {
		t.Fatalf("height after SetSize(20,4): got %d, want %d", got, 4)
	}
}

func TestView_LineNumbersFixedSize(t *testing.T) {
	m := New(Config{
		Text:         "=head1 NAME\n\npodgt - B<assist>\nfour\nfive",
		ShowLineNums: true,
	})
	m = m.Blur()
	m = m.SetSize(30, 3)

	got := viewLines(m)
	want := []string{
		"1 =head1 NAME",
		"2",
		"3 podgt - B<assist>",
	}
	if fmt.Sprintf("%q", got) != fmt.Sprintf("%q", want) {
		t.Fatalf("unexpected view:\n got: %q\nwant: %q", got, want)
	}
}

func TestModel_FollowsCursor(t *testing.T) {
	m := New(Config{Text: "a\nb\nc\nd"})
	m = m.SetSize(10, 2)

	m.Buffer().Move(bufferDocEnd)
	m, _ = m.Update(nil)
	if got := m.viewport.YOffset; got != 2 {
		t.Fatalf("y offset=%d, want 2", got)
	}
}

func TestModel_StatusShowsWarningUnderCursor(t *testing.T) {
	m := podModel(t, "C<$a->b>")
	if m.Status() != "" {
		t.Fatalf("status at start=%q", m.Status())
	}
	m.Buffer().SetCursor(cursorAt(0, 4))
	m, _ = m.Update(nil)
	if got := m.Status(); got == "" || got[:len("arrow")] != "arrow" {
		t.Fatalf("status=%q, want arrow warning", got)
	}
}
