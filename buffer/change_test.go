package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a", Options{})
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}
	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft})
	if _, ok := b.LastChange(); ok {
		t.Fatalf("no-op move must not record a change")
	}
}

func TestBuffer_Change_InsertTextShape(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{GraphemeCol: 1})
	v := b.Version()
	b.InsertText("X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected change")
	}
	if ch.Source != ChangeSourceLocal || ch.VersionBefore != v || ch.VersionAfter != v+1 {
		t.Fatalf("change header: %+v", ch)
	}
	if ch.CursorBefore != (Pos{GraphemeCol: 1}) || ch.CursorAfter != (Pos{GraphemeCol: 2}) {
		t.Fatalf("cursors: %v -> %v", ch.CursorBefore, ch.CursorAfter)
	}
	if len(ch.AppliedEdits) != 1 {
		t.Fatalf("edits=%d", len(ch.AppliedEdits))
	}
	e := ch.AppliedEdits[0]
	if e.InsertText != "X" || e.DeletedText != "" || e.RangeAfter.End != (Pos{GraphemeCol: 2}) {
		t.Fatalf("edit=%+v", e)
	}
}

func TestBuffer_Change_UndoIsHistorySource(t *testing.T) {
	b := New("ab", Options{})
	b.InsertText("X")
	b.Undo()

	ch, _ := b.LastChange()
	if ch.Source != ChangeSourceHistory {
		t.Fatalf("source=%v", ch.Source)
	}
	if len(ch.AppliedEdits) != 1 || ch.AppliedEdits[0].InsertText != "ab" || ch.AppliedEdits[0].DeletedText != "Xab" {
		t.Fatalf("edits=%+v", ch.AppliedEdits)
	}
}

func TestBuffer_LastChange_ReturnsCopy(t *testing.T) {
	b := New("", Options{})
	b.InsertText("a")
	ch, _ := b.LastChange()
	ch.AppliedEdits[0].InsertText = "mutated"

	again, _ := b.LastChange()
	if again.AppliedEdits[0].InsertText != "a" {
		t.Fatalf("LastChange leaked internal state")
	}
}
