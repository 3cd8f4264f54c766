package editor

import "github.com/iw2rmb/podgt/pod"

// DefaultFillColumn is used by fill when Config.FillColumn is not positive.
const DefaultFillColumn = 72

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	ShowLineNums bool
	Style        Style
	// KeyMap defaults to DefaultKeyMap when it has no bindings.
	KeyMap KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int
	ReadOnly     bool

	// Highlighter adds host spans. Warning spans are drawn over them.
	Highlighter Highlighter

	// OnChange runs after every update that changed the buffer version.
	OnChange func(ChangeEvent)

	// Markup enables the POD assists. Nil leaves the editor a plain text
	// editor.
	Markup *pod.Assist

	// FillColumn is the target width of paragraph fill, in cells.
	FillColumn int
}

func (c Config) fillColumn() int {
	if c.FillColumn > 0 {
		return c.FillColumn
	}
	return DefaultFillColumn
}
