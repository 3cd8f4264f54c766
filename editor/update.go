package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/podgt/buffer"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Pasted text is inserted literally and never triggers bindings or the
	// '>' assist.
	if msg.Type == tea.KeyRunes && msg.Paste {
		if !m.cfg.ReadOnly {
			m.buf.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m
	}

	km := m.cfg.KeyMap
	move := func(unit buffer.MoveUnit, dir buffer.MoveDir, extend bool) {
		m.buf.Move(buffer.Move{Unit: unit, Dir: dir, Extend: extend})
	}

	switch {
	case key.Matches(msg, km.Left):
		move(buffer.MoveGrapheme, buffer.DirLeft, false)
	case key.Matches(msg, km.Right):
		move(buffer.MoveGrapheme, buffer.DirRight, false)
	case key.Matches(msg, km.Up):
		move(buffer.MoveLine, buffer.DirUp, false)
	case key.Matches(msg, km.Down):
		move(buffer.MoveLine, buffer.DirDown, false)

	case key.Matches(msg, km.ShiftLeft):
		move(buffer.MoveGrapheme, buffer.DirLeft, true)
	case key.Matches(msg, km.ShiftRight):
		move(buffer.MoveGrapheme, buffer.DirRight, true)
	case key.Matches(msg, km.ShiftUp):
		move(buffer.MoveLine, buffer.DirUp, true)
	case key.Matches(msg, km.ShiftDown):
		move(buffer.MoveLine, buffer.DirDown, true)

	case key.Matches(msg, km.WordLeft):
		move(buffer.MoveWord, buffer.DirLeft, false)
	case key.Matches(msg, km.WordRight):
		move(buffer.MoveWord, buffer.DirRight, false)
	case key.Matches(msg, km.ParagraphUp):
		move(buffer.MoveParagraph, buffer.DirUp, false)
	case key.Matches(msg, km.ParagraphDown):
		move(buffer.MoveParagraph, buffer.DirDown, false)

	case key.Matches(msg, km.Home):
		move(buffer.MoveLine, buffer.DirHome, false)
	case key.Matches(msg, km.End):
		move(buffer.MoveLine, buffer.DirEnd, false)
	case key.Matches(msg, km.DocStart):
		move(buffer.MoveDoc, buffer.DirHome, false)
	case key.Matches(msg, km.DocEnd):
		move(buffer.MoveDoc, buffer.DirEnd, false)

	case m.cfg.ReadOnly:
		// Everything below mutates the buffer.

	case key.Matches(msg, km.Backspace):
		m.buf.DeleteBackward()
	case key.Matches(msg, km.Delete):
		m.buf.DeleteForward()
	case key.Matches(msg, km.Enter):
		m.buf.InsertNewline()
	case key.Matches(msg, km.Tab):
		m.buf.InsertText("\t")

	case key.Matches(msg, km.Undo):
		m.buf.Undo()
	case key.Matches(msg, km.Redo):
		m.buf.Redo()

	case key.Matches(msg, km.DoubleAngles):
		m.status = m.doubleAtCursor()
	case key.Matches(msg, km.SingleAngles):
		m.status = m.singleAtCursor()
	case key.Matches(msg, km.Fill):
		m.status = m.fillAtCursor()

	case msg.Type == tea.KeySpace:
		m.buf.InsertText(" ")
	case msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt:
		m.insertRunes(string(msg.Runes))
	}
	return m
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
