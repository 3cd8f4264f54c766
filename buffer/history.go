package buffer

type snapshot struct {
	text   string
	cursor Pos
	sel    selectionState
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (b *Buffer) snapshot() snapshot {
	return snapshot{text: b.Text(), cursor: b.cursor, sel: b.sel}
}

func (b *Buffer) restore(s snapshot) {
	b.lines = splitLines(s.text)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}
	if s.sel.active {
		anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
		if anchor != end {
			b.sel = selectionState{active: true, anchor: anchor, end: end}
		}
	}
}

func (b *Buffer) pushUndo(s snapshot) {
	limit := b.opt.HistoryLimit
	if limit <= 0 {
		return
	}
	b.hist.undo = append(b.hist.undo, s)
	if len(b.hist.undo) > limit {
		b.hist.undo = b.hist.undo[len(b.hist.undo)-limit:]
	}
}

func (b *Buffer) recordUndo(prev snapshot) {
	b.pushUndo(prev)
	b.hist.redo = nil
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo) > 0 }

// Undo restores the state before the last text change. A doubling or fill
// rewrite undoes in one step.
func (b *Buffer) Undo() bool {
	n := len(b.hist.undo)
	if n == 0 {
		return false
	}
	prev := b.hist.undo[n-1]
	b.hist.undo = b.hist.undo[:n-1]
	b.hist.redo = append(b.hist.redo, b.travel(prev))
	return true
}

func (b *Buffer) Redo() bool {
	n := len(b.hist.redo)
	if n == 0 {
		return false
	}
	next := b.hist.redo[n-1]
	b.hist.redo = b.hist.redo[:n-1]
	b.pushUndo(b.travel(next))
	return true
}

// travel restores to and returns the snapshot it replaced.
func (b *Buffer) travel(to snapshot) snapshot {
	cur := b.snapshot()
	change := b.beginChange(ChangeSourceHistory)

	b.restore(to)
	b.version++
	if cur.text != to.text {
		b.textVersion++
		change.addAppliedEdit(AppliedEdit{
			RangeBefore: documentRange(cur.text),
			RangeAfter:  documentRange(to.text),
			InsertText:  to.text,
			DeletedText: cur.text,
		})
	}
	b.commitChange(change)
	return cur
}

func documentRange(text string) Range {
	lines := splitLines(text)
	last := len(lines) - 1
	return Range{End: Pos{Row: last, GraphemeCol: len(lines[last])}}
}
