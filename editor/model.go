package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/podgt/buffer"
	"github.com/iw2rmb/podgt/pod"
)

// Model is a Bubble Tea component that renders and edits a POD buffer.
type Model struct {
	cfg Config
	buf *buffer.Buffer

	focused bool

	viewport viewport.Model

	warnings *pod.WarningSet
	status   string

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	if cfg.KeyMap.empty() {
		cfg.KeyMap = DefaultKeyMap()
	}
	m := Model{
		cfg:      cfg,
		buf:      buffer.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		focused:  true,
		viewport: viewport.New(0, 0),
		warnings: &pod.WarningSet{},
	}
	m.lastBufVersion = m.buf.Version()
	m.lastTextVersion = m.buf.TextVersion()
	m.lastCursor = m.buf.Cursor()
	m.rescanWarnings()
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

// Warnings returns the current warnings, sorted by offset.
func (m Model) Warnings() []pod.Warning { return m.warnings.All() }

// Status returns the message of the last assist action, or the warning under
// the cursor.
func (m Model) Status() string {
	if m.status != "" {
		return m.status
	}
	off := m.buf.Offset(m.buf.Cursor())
	for _, w := range m.warnings.In(off, off+1) {
		return w.Rule + ": " + w.Message
	}
	return ""
}

// StatusView renders Status with Style.Status.
func (m Model) StatusView() string {
	return m.cfg.Style.Status.Render(m.Status())
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.viewport.Width = max(width, 0)
	m.viewport.Height = max(height, 0)
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m.status = ""
		m = m.updateKey(msg)
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		m.syncFromBuffer()
		return m, cmd
	default:
		// Hosts may mutate the buffer directly between messages.
		if m.syncFromBuffer() {
			m.followCursor()
		}
		return m, nil
	}
}

func (m Model) View() string { return m.viewport.View() }

// syncFromBuffer refreshes derived state after the buffer changed and reports
// whether the cursor moved.
func (m *Model) syncFromBuffer() (cursorChanged bool) {
	ver, cur := m.buf.Version(), m.buf.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return false
	}
	cursorChanged = cur != m.lastCursor
	m.lastBufVersion, m.lastCursor = ver, cur

	if tv := m.buf.TextVersion(); tv != m.lastTextVersion {
		m.lastTextVersion = tv
		m.rescanWarnings()
	}
	m.rebuildContent()
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(buildChangeEvent(m.buf, m.warnings.Len()))
	}
	return cursorChanged
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h <= 0 {
		return
	}
	row := m.buf.Cursor().Row
	switch y := m.viewport.YOffset; {
	case row < y:
		m.viewport.SetYOffset(row)
	case row >= y+h:
		m.viewport.SetYOffset(row - h + 1)
	default:
		return
	}
	// Highlights are computed for visible rows only.
	m.rebuildContent()
}
