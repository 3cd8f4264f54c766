package editor

import "github.com/iw2rmb/podgt/buffer"

// ChangeEvent is passed to Config.OnChange.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}
	Text string

	// Change is the buffer mutation behind this event, when the text
	// changed. Cursor-only updates leave it zero.
	Change buffer.Change
	// Warnings counts the warnings after the update.
	Warnings int
}

func buildChangeEvent(b *buffer.Buffer, warnings int) ChangeEvent {
	ev := ChangeEvent{
		Version:  b.Version(),
		Cursor:   b.Cursor(),
		Text:     b.Text(),
		Warnings: warnings,
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	if ch, ok := b.LastChange(); ok && ch.VersionAfter == b.Version() {
		ev.Change = ch
	}
	return ev
}
