package editor

import (
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/podgt/buffer"
	"github.com/iw2rmb/podgt/pod"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func viewLines(m Model) []string {
	lines := strings.Split(m.View(), "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(stripANSI(lines[i]), " ")
	}
	return lines
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func alt(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Alt: true} }

func podModel(t *testing.T, text string) Model {
	t.Helper()
	return New(Config{Text: text, Markup: pod.New(pod.DefaultConfig())})
}

var bufferDocEnd = buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd}

func cursorAt(row, col int) buffer.Pos { return buffer.Pos{Row: row, GraphemeCol: col} }

func rangeCols(row, from, to int) buffer.Range {
	return buffer.Range{Start: cursorAt(row, from), End: cursorAt(row, to)}
}
