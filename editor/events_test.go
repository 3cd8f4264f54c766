package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/podgt/buffer"
)

func TestOnChange_FiresOnMutationsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	m := New(Config{
		Text: "ab",
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(events) != 1 {
		t.Fatalf("events after move: got %d, want %d", len(events), 1)
	}
	if got := events[0].Cursor; got != cursorAt(0, 1) {
		t.Fatalf("event cursor after move: got %v", got)
	}
	if len(events[0].Change.AppliedEdits) != 0 {
		t.Fatalf("cursor-only event carries edits: %+v", events[0].Change)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight}) // no-op at EOL
	if len(events) != 2 {
		t.Fatalf("events after no-op: got %d, want %d", len(events), 2)
	}

	m, _ = m.Update(runes("X"))
	if len(events) != 3 {
		t.Fatalf("events after insert: got %d, want %d", len(events), 3)
	}
	ev := events[2]
	if ev.Text != "abX" || ev.Change.Source != buffer.ChangeSourceLocal || len(ev.Change.AppliedEdits) != 1 {
		t.Fatalf("insert event: %+v", ev)
	}
}

func TestOnChange_ReportsAssistRewriteAndWarnings(t *testing.T) {
	var last ChangeEvent
	m := podModel(t, "C<a-E<gt>b>")
	m.cfg.OnChange = func(ev ChangeEvent) { last = ev }
	m.Buffer().SetCursor(cursorAt(0, 3))

	m, _ = m.Update(alt("d"))
	if last.Text != "C<< a->b >>" || last.Change.Source != buffer.ChangeSourceAssist {
		t.Fatalf("event after doubling: %+v", last)
	}
	if last.Warnings != 0 {
		t.Fatalf("warnings=%d, want 0", last.Warnings)
	}
}
