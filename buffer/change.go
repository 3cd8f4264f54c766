package buffer

// ChangeSource identifies what produced a change.
type ChangeSource uint8

const (
	// ChangeSourceLocal marks edits typed or applied by the host.
	ChangeSourceLocal ChangeSource = iota
	// ChangeSourceAssist marks rewrites proposed by the markup assist, such
	// as angle doubling or paragraph fill.
	ChangeSourceAssist
	// ChangeSourceHistory marks undo and redo.
	ChangeSourceHistory
)

func (s ChangeSource) String() string {
	switch s {
	case ChangeSourceLocal:
		return "local"
	case ChangeSourceAssist:
		return "assist"
	case ChangeSourceHistory:
		return "history"
	default:
		return "unknown"
	}
}

// SelectionState captures normalized selection state at a point in time.
type SelectionState struct {
	Active bool
	Range  Range
}

// AppliedEdit describes one effective edit of a change.
type AppliedEdit struct {
	RangeBefore Range
	RangeAfter  Range
	InsertText  string
	DeletedText string
}

// Change is the record of the most recent effective mutation.
type Change struct {
	Source          ChangeSource
	VersionBefore   uint64
	VersionAfter    uint64
	CursorBefore    Pos
	CursorAfter     Pos
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
	AppliedEdits    []AppliedEdit
}

// LastChange returns the most recent effective change.
func (b *Buffer) LastChange() (Change, bool) {
	if !b.hasLastChange {
		return Change{}, false
	}
	out := b.lastChange
	out.AppliedEdits = append([]AppliedEdit(nil), b.lastChange.AppliedEdits...)
	return out, true
}

type changeBuilder struct {
	source          ChangeSource
	versionBefore   uint64
	cursorBefore    Pos
	selectionBefore SelectionState
	edits           []AppliedEdit
}

func (b *Buffer) selectionState() SelectionState {
	r, ok := b.Selection()
	if !ok {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: r}
}

func (b *Buffer) beginChange(src ChangeSource) changeBuilder {
	return changeBuilder{
		source:          src,
		versionBefore:   b.version,
		cursorBefore:    b.cursor,
		selectionBefore: b.selectionState(),
	}
}

func (cb *changeBuilder) addAppliedEdit(e AppliedEdit) {
	cb.edits = append(cb.edits, e)
}

func (b *Buffer) commitChange(cb changeBuilder) {
	if b.version == cb.versionBefore {
		return
	}
	b.lastChange = Change{
		Source:          cb.source,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    b.version,
		CursorBefore:    cb.cursorBefore,
		CursorAfter:     b.cursor,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  b.selectionState(),
		AppliedEdits:    cb.edits,
	}
	b.hasLastChange = true
}
