package buffer

import "github.com/iw2rmb/podgt/internal/grapheme"

type MoveUnit int

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	MoveLine
	// MoveParagraph steps over blank-line separated paragraphs, the unit
	// POD markup spans may not cross.
	MoveParagraph
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome
	DirEnd
)

type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool // extend the selection instead of clearing it
}

func (b *Buffer) Move(m Move) {
	prevCursor, prevSel := b.cursor, b.sel
	next := b.clampPos(b.moveCursor(prevCursor, m))

	sel := selectionState{}
	if m.Extend {
		anchor := prevCursor
		if prevSel.active && prevSel.anchor != prevSel.end {
			anchor = prevSel.anchor
		}
		if anchor != next {
			sel = selectionState{active: true, anchor: anchor, end: next}
		}
	}

	if prevCursor == next && sameSelection(prevSel, sel) {
		return
	}
	b.cursor = next
	b.sel = sel
	b.version++
}

func sameSelection(a, b selectionState) bool {
	if !a.active && !b.active {
		return true
	}
	return a == b
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveGrapheme:
		return b.moveGrapheme(p, m.Dir)
	case MoveWord:
		return b.moveWord(p, m.Dir)
	case MoveLine:
		return b.moveLine(p, m.Dir)
	case MoveParagraph:
		return b.moveParagraph(p, m.Dir)
	case MoveDoc:
		return b.moveDoc(p, m.Dir)
	}
	return p
}

func (b *Buffer) moveGrapheme(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	switch dir {
	case DirLeft:
		if col > 0 {
			return Pos{Row: row, GraphemeCol: col - 1}
		}
		if row > 0 {
			return Pos{Row: row - 1, GraphemeCol: len(b.lines[row-1])}
		}
	case DirRight:
		if col < len(b.lines[row]) {
			return Pos{Row: row, GraphemeCol: col + 1}
		}
		if row < len(b.lines)-1 {
			return Pos{Row: row + 1}
		}
	default:
		return b.moveLine(p, dir)
	}
	return p
}

func (b *Buffer) moveLine(p Pos, dir MoveDir) Pos {
	row, col := p.Row, p.GraphemeCol
	switch dir {
	case DirHome:
		return Pos{Row: row}
	case DirEnd:
		return Pos{Row: row, GraphemeCol: len(b.lines[row])}
	case DirUp:
		if row > 0 {
			return Pos{Row: row - 1, GraphemeCol: min(col, len(b.lines[row-1]))}
		}
	case DirDown:
		if row < len(b.lines)-1 {
			return Pos{Row: row + 1, GraphemeCol: min(col, len(b.lines[row+1]))}
		}
	}
	return p
}

func (b *Buffer) moveWord(p Pos, dir MoveDir) Pos {
	line := b.lines[p.Row]
	switch dir {
	case DirLeft:
		return Pos{Row: p.Row, GraphemeCol: prevWordBoundary(line, p.GraphemeCol)}
	case DirRight:
		return Pos{Row: p.Row, GraphemeCol: nextWordBoundary(line, p.GraphemeCol)}
	}
	return b.moveLine(p, dir)
}

// moveParagraph moves up to the first line of the previous paragraph or down
// past the end of the current one.
func (b *Buffer) moveParagraph(p Pos, dir MoveDir) Pos {
	row := p.Row
	switch dir {
	case DirUp, DirLeft:
		for row > 0 && b.blank(row-1) {
			row--
		}
		for row > 0 && !b.blank(row-1) {
			row--
		}
		return Pos{Row: row}
	case DirDown, DirRight:
		last := len(b.lines) - 1
		for row < last && !b.blank(row) {
			row++
		}
		for row < last && b.blank(row) {
			row++
		}
		if row == last && !b.blank(row) {
			return Pos{Row: row, GraphemeCol: len(b.lines[row])}
		}
		return Pos{Row: row}
	}
	return b.moveLine(p, dir)
}

func (b *Buffer) moveDoc(p Pos, dir MoveDir) Pos {
	switch dir {
	case DirHome, DirUp:
		return Pos{}
	case DirEnd, DirDown:
		last := len(b.lines) - 1
		return Pos{Row: last, GraphemeCol: len(b.lines[last])}
	}
	return p
}

func (b *Buffer) blank(row int) bool {
	for _, g := range b.lines[row] {
		if !grapheme.IsSpace(g) {
			return false
		}
	}
	return true
}

// Word boundaries skip whitespace then non-whitespace and never cross a line.
func prevWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i > 0 && grapheme.IsSpace(line[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(line[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(line []string, col int) int {
	i := clampInt(col, 0, len(line))
	for i < len(line) && grapheme.IsSpace(line[i]) {
		i++
	}
	for i < len(line) && !grapheme.IsSpace(line[i]) {
		i++
	}
	return i
}
