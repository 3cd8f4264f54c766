package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 1})
	b.InsertText("X\nY\nZ")

	if got, want := b.Text(), "aX\nY\nZb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 2, GraphemeCol: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if b.TextVersion() != 1 {
		t.Fatalf("text version=%d", b.TextVersion())
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("C<old>", Options{})
	b.SetSelection(Range{Start: Pos{GraphemeCol: 2}, End: Pos{GraphemeCol: 5}})
	b.InsertText("new")

	if got := b.Text(); got != "C<new>" {
		t.Fatalf("text=%q", got)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("selection must clear")
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New("ab\ncé", Options{})
	b.SetCursor(Pos{Row: 1, GraphemeCol: 2})
	b.DeleteBackward()
	if got := b.Text(); got != "ab\nc" {
		t.Fatalf("whole cluster must go: %q", got)
	}

	b.SetCursor(Pos{Row: 1})
	b.DeleteBackward()
	if got, cur := b.Text(), b.Cursor(); got != "abc" || cur != (Pos{GraphemeCol: 2}) {
		t.Fatalf("join: text=%q cursor=%v", got, cur)
	}

	b.SetCursor(Pos{})
	v := b.Version()
	b.DeleteBackward()
	if b.Version() != v {
		t.Fatalf("backspace at start must be a no-op")
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, GraphemeCol: 2})
	b.DeleteForward()
	if got := b.Text(); got != "abcd" {
		t.Fatalf("text=%q", got)
	}

	b.Move(Move{Unit: MoveDoc, Dir: DirEnd})
	v := b.Version()
	b.DeleteForward()
	if b.Version() != v {
		t.Fatalf("delete at end must be a no-op")
	}
}

func TestBuffer_DeleteSelection_SpanningLines(t *testing.T) {
	b := New("one\ntwo\nthree", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, GraphemeCol: 1}, End: Pos{Row: 2, GraphemeCol: 2}})
	b.DeleteBackward()
	if got := b.Text(); got != "oree" {
		t.Fatalf("text=%q", got)
	}
	if got := b.Cursor(); got != (Pos{GraphemeCol: 1}) {
		t.Fatalf("cursor=%v", got)
	}
}
