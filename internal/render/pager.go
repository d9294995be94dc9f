package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	glam "github.com/charmbracelet/glamour"
)

// Diff is one previewed file in the pager: a title (the .rej path) and the
// unified diff text to display.
type Diff struct {
	Title string
	Text  string
}

// WriteDiffs prints diffs to w without any interactivity, one rule-headed
// section per file. Used when stdout is not a terminal.
func WriteDiffs(w io.Writer, diffs []Diff) {
	for _, diff := range diffs {
		fmt.Fprintf(w, "--- %s ---\n", diff.Title)
		fmt.Fprint(w, diff.Text)
		if !strings.HasSuffix(diff.Text, "\n") {
			fmt.Fprintln(w)
		}
	}
}

// PageDiffs shows diffs in a full-screen scrollable viewport with the
// hunks highlighted by glamour. It blocks until the user quits.
func PageDiffs(title string, diffs []Diff) error {
	m := &pagerModel{title: title, diffs: diffs}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

type pagerModel struct {
	title string
	diffs []Diff
	vp    viewport.Model
	ready bool
}

func (m *pagerModel) Init() tea.Cmd {
	return nil
}

func (m *pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Title line above, help line below.
		contentHeight := msg.Height - 2
		if contentHeight < 1 {
			contentHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(msg.Width, contentHeight)
			m.ready = true
		} else {
			m.vp.Width = msg.Width
			m.vp.Height = contentHeight
		}
		m.vp.SetContent(m.renderContent(msg.Width))
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *pagerModel) View() string {
	if !m.ready {
		return "loading…"
	}
	help := Dim.Render("↑/↓ or j/k to scroll · q to quit")
	return Header.Render(m.title) + "\n" + m.vp.View() + "\n" + help
}

// renderContent rebuilds the highlighted diff sections for the current
// terminal width. Highlighting failures degrade to the raw diff text.
func (m *pagerModel) renderContent(width int) string {
	renderer, err := glam.NewTermRenderer(
		glam.WithAutoStyle(),
		glam.WithWordWrap(width),
	)

	var b strings.Builder
	for _, diff := range m.diffs {
		b.WriteString(Rule(diff.Title, width))
		b.WriteString("\n")
		if renderer == nil || err != nil {
			b.WriteString(diff.Text)
			b.WriteString("\n")
			continue
		}
		rendered, renderErr := renderer.Render("```diff\n" + diff.Text + "```\n")
		if renderErr != nil {
			b.WriteString(diff.Text)
			b.WriteString("\n")
			continue
		}
		b.WriteString(rendered)
	}
	return b.String()
}
