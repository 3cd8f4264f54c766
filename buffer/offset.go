package buffer

import "github.com/iw2rmb/podgt/internal/grapheme"

// Offset returns the byte offset of p in Text(). p is clamped first.
func (b *Buffer) Offset(p Pos) int {
	p = b.clampPos(p)
	off := 0
	for row := 0; row < p.Row; row++ {
		off += grapheme.ByteLen(b.lines[row], len(b.lines[row])) + 1
	}
	return off + grapheme.ByteLen(b.lines[p.Row], p.GraphemeCol)
}

// PosAt returns the position of byte offset off in Text(). Offsets outside
// the document clamp to its ends and offsets inside a cluster snap to the
// start of that cluster.
func (b *Buffer) PosAt(off int) Pos {
	if off <= 0 {
		return Pos{}
	}
	for row, line := range b.lines {
		col := 0
		for _, g := range line {
			if off < len(g) {
				return Pos{Row: row, GraphemeCol: col}
			}
			off -= len(g)
			col++
		}
		if off == 0 || row == len(b.lines)-1 {
			return Pos{Row: row, GraphemeCol: col}
		}
		off-- // newline
	}
	return Pos{}
}
