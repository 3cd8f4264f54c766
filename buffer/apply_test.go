package buffer

import "testing"

func TestBuffer_Apply_SequentialAgainstEvolvingState(t *testing.T) {
	b := New("abc", Options{})
	b.Apply(
		TextEdit{Range: Range{Start: Pos{GraphemeCol: 1}, End: Pos{GraphemeCol: 2}}, Text: "XX"},
		TextEdit{Range: Range{Start: Pos{GraphemeCol: 3}, End: Pos{GraphemeCol: 3}}, Text: "-"},
	)
	if got := b.Text(); got != "aXX-c" {
		t.Fatalf("text=%q", got)
	}
	if got := b.Cursor(); got != (Pos{GraphemeCol: 4}) {
		t.Fatalf("cursor=%v", got)
	}
}

func TestBuffer_Apply_ClampsAndNoOps(t *testing.T) {
	b := New("ab", Options{})
	b.Apply(TextEdit{Range: Range{Start: Pos{Row: 5, GraphemeCol: 5}, End: Pos{Row: 9}}, Text: "!"})
	if got := b.Text(); got != "ab!" {
		t.Fatalf("text=%q", got)
	}

	v := b.Version()
	b.Apply(TextEdit{Range: Range{Start: Pos{GraphemeCol: 0}, End: Pos{GraphemeCol: 1}}, Text: "a"})
	b.Apply()
	if b.Version() != v {
		t.Fatalf("no-op apply bumped version")
	}
}

func TestBuffer_ReplaceBytes_AssistRewrite(t *testing.T) {
	b := New("see\nC<a E<gt> b> now", Options{})
	start, end := 4, 4+len("C<a E<gt> b>")
	if !b.ReplaceBytes(start, end, "C<< a > b >>") {
		t.Fatalf("expected change")
	}
	if got, want := b.Text(), "see\nC<< a > b >> now"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	ch, ok := b.LastChange()
	if !ok || ch.Source != ChangeSourceAssist {
		t.Fatalf("change source=%v ok=%v", ch.Source, ok)
	}
	if got := b.Cursor(); got != (Pos{Row: 1, GraphemeCol: 12}) {
		t.Fatalf("cursor=%v", got)
	}

	b.Undo()
	if got := b.Text(); got != "see\nC<a E<gt> b> now" {
		t.Fatalf("undo must restore the rewrite in one step: %q", got)
	}
}
