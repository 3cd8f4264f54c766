package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/podgt/editor"
)

func newEditCmd(a *app) *cobra.Command {
	var readOnly bool
	cmd := &cobra.Command{
		Use:   "edit FILE",
		Short: "Edit a POD file with markup assists",
		Long: `edit opens FILE in a terminal editor. Typing '>' inside a span picks
E<gt> where a bare '>' would close it, alt+d and alt+s switch the span at
the cursor between the single and doubled forms, and alt+q fills the
paragraph without breaking inside S<...>.

ctrl+s saves, ctrl+c quits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			text, perm, err := readFile(path)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if perm == 0 {
				perm = 0o644
			}
			m := newEditModel(a, path, text, perm, readOnly)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
			return err
		},
	}
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "open without allowing edits")
	return cmd
}

type editModel struct {
	editor editor.Model
	log    *slog.Logger

	path  string
	perm  os.FileMode
	saved uint64
	msg   string

	width int
	bar   lipgloss.Style
}

func newEditModel(a *app, path, text string, perm os.FileMode, readOnly bool) editModel {
	ed := editor.New(editor.Config{
		Text:         text,
		ShowLineNums: a.cfg.Editor.LineNumbers,
		Style:        editor.DefaultStyle(),
		ReadOnly:     readOnly,
		Markup:       a.assist,
		FillColumn:   a.cfg.Editor.FillColumn,
	})
	return editModel{
		editor: ed,
		log:    a.log,
		path:   path,
		perm:   perm,
		saved:  ed.Buffer().TextVersion(),
		bar:    lipgloss.NewStyle().Reverse(true),
	}
}

func (m editModel) Init() tea.Cmd { return nil }

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(0, msg.Height-2))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		}
		m.msg = ""
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m *editModel) save() {
	b := m.editor.Buffer()
	if err := os.WriteFile(m.path, []byte(b.Text()), m.perm); err != nil {
		m.msg = "save failed: " + err.Error()
		m.log.Error("save failed", slog.String("file", m.path), slog.Any("err", err))
		return
	}
	m.saved = b.TextVersion()
	m.msg = "saved"
}

func (m editModel) dirty() bool { return m.editor.Buffer().TextVersion() != m.saved }

func (m editModel) statusBar() string {
	b := m.editor.Buffer()
	name := m.path
	if m.dirty() {
		name += " [+]"
	}
	right := b.Cursor().String()
	if n := len(m.editor.Warnings()); n > 0 {
		right = pluralWarnings(n) + "  " + right
	}
	gap := max(1, m.width-lipgloss.Width(name)-lipgloss.Width(right))
	return m.bar.Render(name + strings.Repeat(" ", gap) + right)
}

func pluralWarnings(n int) string {
	if n == 1 {
		return "1 warning"
	}
	return strconv.Itoa(n) + " warnings"
}

func (m editModel) View() string {
	msg := m.msg
	if msg == "" {
		msg = m.editor.StatusView()
	}
	return m.editor.View() + "\n" + m.statusBar() + "\n" + msg
}
